package auth

import "sync"

// Blacklist is a process-scoped set of revoked token strings. A token on the
// list is rejected by the access guard even while its signature and expiry
// are still valid. Entries do not survive a process restart.
//
// The set is read on every authenticated request and written on logout, so
// reads take a shared lock and writes an exclusive one.
type Blacklist struct {
	mu     sync.RWMutex
	tokens map[string]struct{}
}

func NewBlacklist() *Blacklist {
	return &Blacklist{tokens: make(map[string]struct{})}
}

// Add marks a token as revoked. Adding the same token twice is a no-op.
func (b *Blacklist) Add(token string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tokens[token] = struct{}{}
}

// Contains reports whether the token has been revoked.
func (b *Blacklist) Contains(token string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.tokens[token]
	return ok
}

// Remove deletes a token from the set. Removing an absent token is a no-op.
// Entries for expired tokens are safe to remove: the codec already rejects
// them on its own.
func (b *Blacklist) Remove(token string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.tokens, token)
}

// Tokens returns a snapshot of the revoked tokens in unspecified order.
// Meant for administrative inspection, not for the verification path.
func (b *Blacklist) Tokens() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]string, 0, len(b.tokens))
	for t := range b.tokens {
		out = append(out, t)
	}
	return out
}

// Len returns the number of revoked tokens.
func (b *Blacklist) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.tokens)
}
