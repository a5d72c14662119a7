package service

import (
	"sync"

	"github.com/keywarden/vaultsync/models"
)

// PolicyCache is the per-user policy cache consulted by [PolicyService]. It
// is constructor-injected so its lifetime is scoped to the engine, not the
// package. Readers always observe either the pre- or post-replacement
// snapshot atomically.
type PolicyCache struct {
	mu       sync.RWMutex
	policies map[string][]models.Policy
}

// NewPolicyCache constructs an empty [PolicyCache].
func NewPolicyCache() *PolicyCache {
	return &PolicyCache{policies: make(map[string][]models.Policy)}
}

// Replace installs the full policy list for userID, discarding any previous
// entry.
func (c *PolicyCache) Replace(userID string, policies []models.Policy) {
	copied := make([]models.Policy, len(policies))
	copy(copied, policies)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.policies[userID] = copied
}

// Get returns the cached policy list for userID. ok is false on a miss.
func (c *PolicyCache) Get(userID string) (policies []models.Policy, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cached, ok := c.policies[userID]
	return cached, ok
}

// Invalidate drops the cached entry for userID.
func (c *PolicyCache) Invalidate(userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.policies, userID)
}
