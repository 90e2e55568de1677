// Package pools manages named, toggleable groups of character notes. Pool
// and member ordering is display-significant and preserved by every
// operation.
package pools

import "github.com/google/uuid"

// Pool is a named group of character note paths. Pools are keyed by a
// stable ID so settings-UI actions survive reordering. Duplicate members,
// within or across pools, are permitted.
type Pool struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Members []string `json:"members"`
	Enabled bool     `json:"enabled"`
}

// Add appends a new enabled pool with the given name and returns the
// updated slice along with the new pool's ID.
func Add(ps []Pool, name string) ([]Pool, string) {
	p := Pool{
		ID:      uuid.NewString(),
		Name:    name,
		Enabled: true,
	}
	return append(ps, p), p.ID
}

// Find returns a pointer into ps for the pool with the given ID, or nil.
func Find(ps []Pool, id string) *Pool {
	for i := range ps {
		if ps[i].ID == id {
			return &ps[i]
		}
	}
	return nil
}

// Rename changes a pool's display name. Reports whether the pool exists.
func Rename(ps []Pool, id, name string) bool {
	p := Find(ps, id)
	if p == nil {
		return false
	}
	p.Name = name
	return true
}

// Remove deletes the pool with the given ID, preserving the order of the
// remaining pools.
func Remove(ps []Pool, id string) []Pool {
	for i := range ps {
		if ps[i].ID == id {
			return append(ps[:i], ps[i+1:]...)
		}
	}
	return ps
}

// Toggle sets a pool's enabled flag. Reports whether the pool exists.
func Toggle(ps []Pool, id string, enabled bool) bool {
	p := Find(ps, id)
	if p == nil {
		return false
	}
	p.Enabled = enabled
	return true
}

// AddMember appends a note path to a pool's member list. No uniqueness
// check is made. Reports whether the pool exists.
func AddMember(ps []Pool, id, notePath string) bool {
	p := Find(ps, id)
	if p == nil {
		return false
	}
	p.Members = append(p.Members, notePath)
	return true
}

// RemoveMember deletes the member at index from a pool. Reports whether the
// pool exists and the index is in range.
func RemoveMember(ps []Pool, id string, index int) bool {
	p := Find(ps, id)
	if p == nil || index < 0 || index >= len(p.Members) {
		return false
	}
	p.Members = append(p.Members[:index], p.Members[index+1:]...)
	return true
}

// ActiveMembers returns the members of every enabled pool, concatenated in
// pool order then member order. The result is empty when no pool is enabled
// or all enabled pools are empty.
func ActiveMembers(ps []Pool) []string {
	var out []string
	for _, p := range ps {
		if !p.Enabled {
			continue
		}
		out = append(out, p.Members...)
	}
	return out
}
