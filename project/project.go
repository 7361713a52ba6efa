package project

import (
	"fmt"
	"net/url"

	"github.com/gridnet-dev/gridnet-contract/contract"
	"github.com/gridnet-dev/gridnet-contract/dispatch"
	"go.uber.org/zap"
)

// Whitelist holds the approved projects and implements dispatch.Handler for
// project contracts. The contract key is the project name and the value its
// statistics URL, which must be an absolute http(s) URL.
type Whitelist struct {
	log      *zap.Logger
	projects map[string]string
}

// NewWhitelist returns an empty whitelist.
func NewWhitelist(log *zap.Logger) *Whitelist {
	if log == nil {
		log = zap.NewNop()
	}

	return &Whitelist{
		log:      log,
		projects: make(map[string]string),
	}
}

// Add implements dispatch.Handler.
func (w *Whitelist) Add(c *contract.Contract) error {
	u, err := url.Parse(c.Value)
	if err != nil {
		return fmt.Errorf("project: reject %q: %w", c.Key, err)
	}

	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("project: reject %q: %q is not an absolute http(s) URL", c.Key, c.Value)
	}

	w.projects[c.Key] = c.Value

	w.log.Info("project whitelisted",
		zap.String("name", c.Key),
		zap.String("url", c.Value))

	return nil
}

// Delete implements dispatch.Handler.
func (w *Whitelist) Delete(c *contract.Contract) error {
	delete(w.projects, c.Key)

	w.log.Info("project delisted", zap.String("name", c.Key))

	return nil
}

// Revert implements dispatch.Handler.
func (w *Whitelist) Revert(c *contract.Contract) error {
	return dispatch.RevertDefault(w, c)
}

// Contains reports whether a project is whitelisted.
func (w *Whitelist) Contains(name string) bool {
	_, ok := w.projects[name]

	return ok
}

// Snapshot returns a copy of the current whitelist.
func (w *Whitelist) Snapshot() map[string]string {
	out := make(map[string]string, len(w.projects))
	for name, u := range w.projects {
		out[name] = u
	}

	return out
}
