// Command contract-tool composes, signs, verifies and inspects governance
// contracts without a running node. Composed contracts print both the legacy
// tagged-string form and the hex of the versioned binary encoding.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/gridnet-dev/gridnet-contract/config"
	"github.com/gridnet-dev/gridnet-contract/contract"
	"github.com/nspcc-dev/neo-go/pkg/crypto/keys"
)

func main() {
	configPath := flag.String("config", "", "Path to the node options YAML file")
	typ := flag.String("type", "", "Contract type to compose (e.g. 'beacon', 'poll')")
	action := flag.String("action", "A", "Contract action: 'A' to add, 'D' to remove")
	key := flag.String("key", "", "Contract key (generated for polls when empty)")
	value := flag.String("value", "", "Contract value")
	signingKey := flag.String("signing-key", "", "Hex/WIF private key for self-signed contract types")
	inspect := flag.String("inspect", "", "Legacy tagged-string message to inspect")
	verify := flag.String("verify", "", "Legacy tagged-string message to verify")

	flag.Parse()

	switch {
	case *inspect != "":
		inspectMessage(*inspect)
	case *verify != "":
		verifyMessage(*verify)
	case *typ != "":
		compose(*configPath, *typ, *action, *key, *value, *signingKey)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func compose(configPath, typ, action, key, value, signingKey string) {
	opts := config.Default()
	if configPath != "" {
		var err error
		if opts, err = config.Load(configPath); err != nil {
			log.Fatal(err)
		}
	}

	t := contract.ParseType(typ)
	if t.ID() == contract.TypeUnknown {
		log.Fatalf("unknown contract type %q", typ)
	}

	if key == "" {
		if t.ID() != contract.TypePoll {
			log.Fatal("-key is required for non-poll contracts")
		}
		key = uuid.NewString()
	}

	c := contract.New(t, contract.ParseAction(action), key, value)
	c.TxTimestamp = time.Now().Unix()

	signer := contract.NewSigner(nil)

	var err error
	switch {
	case c.RequiresMessageKey():
		err = signer.SignWithMessageKey(&c)
	case c.RequiresMasterKey():
		var priv *keys.PrivateKey
		if priv, err = opts.MasterPrivateKey(); err == nil {
			err = signer.Sign(&c, priv)
		}
	default:
		if signingKey == "" {
			log.Fatalf("%s-%s contracts need -signing-key", t.String(), c.Action.String())
		}
		var priv *keys.PrivateKey
		if priv, err = parsePrivateKey(signingKey); err == nil {
			err = signer.Sign(&c, priv)
		}
	}
	if err != nil {
		log.Fatal(err)
	}

	if !c.Validate() {
		log.Fatal("composed contract failed validation")
	}

	wire, err := c.Bytes()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(c.ToString())
	fmt.Println(hex.EncodeToString(wire))
}

func inspectMessage(message string) {
	if !contract.Detect(message) {
		log.Fatal("message is not a contract")
	}

	c := contract.Parse(message, time.Now().Unix())

	fmt.Printf("version:     %d\n", c.Version)
	fmt.Printf("type:        %s\n", c.Type.String())
	fmt.Printf("action:      %s\n", c.Action.String())
	fmt.Printf("key:         %s\n", c.Key)
	fmt.Printf("value:       %s\n", c.Value)
	fmt.Printf("signature:   %s\n", c.Signature.String())
	fmt.Printf("hash:        %s\n", c.Hash().StringLE())
	fmt.Printf("well-formed: %t\n", c.WellFormed())
}

func verifyMessage(message string) {
	if !contract.Detect(message) {
		log.Fatal("message is not a contract")
	}

	c := contract.Parse(message, time.Now().Unix())
	if !c.Validate() {
		log.Fatal("contract is invalid")
	}

	fmt.Println("contract is valid")
}

func parsePrivateKey(s string) (*keys.PrivateKey, error) {
	if priv, err := keys.NewPrivateKeyFromHex(s); err == nil {
		return priv, nil
	}

	return keys.NewPrivateKeyFromWIF(s)
}
