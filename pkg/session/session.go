// Package session manages authentication tokens for the remote API.
// Tokens are obtained through the PlunetAPI login operation, cached
// per credential set, and reused until an operation reports them
// invalid. Concurrent callers needing a token for the same credentials
// share a single login round trip.
package session

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/flowbridge/plunet/pkg/soap"
	"github.com/flowbridge/plunet/pkg/xmltree"
)

// AuthService is the service path that carries login and logout.
const AuthService = "PlunetAPI"

// ErrNoToken is returned when a login round trip succeeds at the HTTP
// level but the response carries no usable token.
var ErrNoToken = errors.New("session: login response contained no token")

// Credentials identify one remote account on one endpoint.
type Credentials struct {
	URL      string
	Username string
	Password string
}

// key derives the cache identity of a credential set. The password is
// deliberately excluded so rotating it does not strand a cache entry.
func (c Credentials) key() string {
	sum := sha256.Sum256([]byte(c.URL + "|" + c.Username))
	return hex.EncodeToString(sum[:])
}

// Caller sends a SOAP envelope and returns the raw response body.
type Caller interface {
	Send(ctx context.Context, url, soapAction, envelope string) (string, error)
}

// Manager caches session tokens per credential set.
type Manager struct {
	client Caller
	log    *slog.Logger

	mu     sync.Mutex
	tokens map[string]string
	flight singleflight.Group
}

// NewManager returns a Manager that logs in through client. A nil
// logger disables session logging.
func NewManager(client Caller, log *slog.Logger) *Manager {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Manager{
		client: client,
		log:    log,
		tokens: make(map[string]string),
	}
}

// Get returns a token for creds, reusing a cached one when present.
// On a cache miss at most one login is in flight per credential set;
// concurrent callers block on and share its outcome.
func (m *Manager) Get(ctx context.Context, creds Credentials) (string, error) {
	k := creds.key()

	m.mu.Lock()
	if token, ok := m.tokens[k]; ok {
		m.mu.Unlock()
		return token, nil
	}
	m.mu.Unlock()

	v, err, _ := m.flight.Do(k, func() (any, error) {
		m.mu.Lock()
		if token, ok := m.tokens[k]; ok {
			m.mu.Unlock()
			return token, nil
		}
		m.mu.Unlock()

		token, err := m.login(ctx, creds)
		if err != nil {
			return "", err
		}
		m.mu.Lock()
		m.tokens[k] = token
		m.mu.Unlock()
		return token, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// Refresh discards any cached token for creds and logs in again. Used
// after the remote side reports the current token invalid.
func (m *Manager) Refresh(ctx context.Context, creds Credentials) (string, error) {
	m.Invalidate(creds)
	return m.Get(ctx, creds)
}

// Invalidate drops the cached token for creds, if any.
func (m *Manager) Invalidate(creds Credentials) {
	m.mu.Lock()
	delete(m.tokens, creds.key())
	m.mu.Unlock()
}

// Logout releases the remote session for creds and drops the cached
// token. A missing cache entry is not an error.
func (m *Manager) Logout(ctx context.Context, creds Credentials) error {
	m.mu.Lock()
	token, ok := m.tokens[creds.key()]
	delete(m.tokens, creds.key())
	m.mu.Unlock()
	if !ok {
		return nil
	}

	body := "<UUID>" + soap.EscapeXML(token) + "</UUID>"
	envelope := soap.BuildEnvelope("logout", body)
	url := soap.ServiceURL(creds.URL, AuthService)
	if _, err := m.client.Send(ctx, url, soap.Action("logout"), envelope); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	m.log.Debug("session released", "username", creds.Username)
	return nil
}

func (m *Manager) login(ctx context.Context, creds Credentials) (string, error) {
	body := "<username>" + soap.EscapeXML(creds.Username) + "</username>" +
		"<password>" + soap.EscapeXML(creds.Password) + "</password>"
	envelope := soap.BuildEnvelope("login", body)
	url := soap.ServiceURL(creds.URL, AuthService)

	raw, err := m.client.Send(ctx, url, soap.Action("login"), envelope)
	if err != nil {
		var httpErr *soap.HTTPError
		// Servers deliver login faults with a non-2xx status; the fault
		// message is more useful than the status line.
		if errors.As(err, &httpErr) && raw != "" {
			if fault, ok := xmltree.FindFault(xmltree.Parse(raw)); ok {
				return "", fmt.Errorf("login: %w", fault)
			}
		}
		return "", fmt.Errorf("login: %w", err)
	}

	tree := xmltree.Parse(raw)
	if fault, ok := xmltree.FindFault(tree); ok {
		return "", fmt.Errorf("login: %w", fault)
	}
	token, ok := loginToken(raw, tree)
	if !ok {
		return "", ErrNoToken
	}
	m.log.Debug("session established", "username", creds.Username)
	return token, nil
}

// loginToken pulls the session token out of a login response. The
// token is plain text under <return>, so the block is isolated
// textually first; a tree search covers responses that nest it deeper.
func loginToken(raw string, tree xmltree.Tree) (string, bool) {
	if inner, ok := xmltree.ExtractBlock(raw, "return"); ok {
		inner = strings.TrimSpace(inner)
		if inner != "" && !strings.Contains(inner, "<") {
			return inner, true
		}
	}
	if v, ok := tree.Find("return"); ok {
		return xmltree.Text(v)
	}
	return "", false
}
