package state

import "strings"

// Player is the single adventurer of a session
type Player struct {
	name      string
	health    int
	inventory []string
}

// NewPlayer creates a player with a trimmed name, the given health and no items
func NewPlayer(name string, health int) *Player {
	return &Player{
		name:   strings.TrimSpace(name),
		health: health,
	}
}

// Name returns the player's display name
func (p *Player) Name() string {
	return p.name
}

// Health returns the remaining health
func (p *Player) Health() int {
	return p.health
}

// Alive reports whether the player still has health left
func (p *Player) Alive() bool {
	return p.health > 0
}

// ApplyDamage lowers health by amount, never below zero. Non-positive amounts are ignored.
func (p *Player) ApplyDamage(amount int) {
	if amount <= 0 {
		return
	}
	p.health -= amount
	if p.health < 0 {
		p.health = 0
	}
}

// Inventory returns a copy of the carried items in pick-up order
func (p *Player) Inventory() []string {
	return append([]string(nil), p.inventory...)
}

// PickUpItem adds an item to the player's inventory
func (p *Player) PickUpItem(item string) {
	p.inventory = append(p.inventory, item)
}

// InventorySummary returns "No items" or the items joined with ", "
func (p *Player) InventorySummary() string {
	if len(p.inventory) == 0 {
		return "No items"
	}
	return strings.Join(p.inventory, ", ")
}
