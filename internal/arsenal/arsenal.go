package arsenal

// DefaultCapacity is the number of weapon slots an arsenal starts with.
const DefaultCapacity = 6

// Arsenal owns one WeaponInstance per acquired weapon. Instances are
// iterated in acquisition order so a frame's firing order is stable.
type Arsenal struct {
	catalog  *Catalog
	capacity int
	weapons  map[string]*WeaponInstance
	order    []string
}

func newArsenal(catalog *Catalog, capacity int) *Arsenal {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Arsenal{
		catalog:  catalog,
		capacity: capacity,
		weapons:  make(map[string]*WeaponInstance),
	}
}

// Add acquires the weapon at level 1. If it is already owned the call
// delegates to Upgrade. Returns false for unknown ids or a full arsenal,
// with no side effects on failure.
func (a *Arsenal) Add(id string) bool {
	if _, owned := a.weapons[id]; owned {
		return a.Upgrade(id)
	}

	def, ok := a.catalog.Get(id)
	if !ok {
		return false
	}
	if len(a.weapons) >= a.capacity {
		return false
	}

	a.weapons[id] = newWeaponInstance(def, MinLevel)
	a.order = append(a.order, id)
	return true
}

// Upgrade replaces the instance with a new one at level+1. Returns false
// if the weapon is not owned or already at max level; repeated calls at
// max level are safe no-ops.
func (a *Arsenal) Upgrade(id string) bool {
	wi, owned := a.weapons[id]
	if !owned || wi.Level >= MaxLevel {
		return false
	}
	a.weapons[id] = wi.upgraded()
	return true
}

// Remove deletes the instance. Returns false if the weapon was not owned.
// The caller is responsible for purging the weapon's projectiles.
func (a *Arsenal) Remove(id string) bool {
	if _, owned := a.weapons[id]; !owned {
		return false
	}
	delete(a.weapons, id)
	for i, wid := range a.order {
		if wid == id {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
	return true
}

// Get returns the instance for id, or nil.
func (a *Arsenal) Get(id string) *WeaponInstance {
	return a.weapons[id]
}

// Count returns the number of owned weapons.
func (a *Arsenal) Count() int { return len(a.weapons) }

// each visits every instance in acquisition order.
func (a *Arsenal) each(fn func(*WeaponInstance)) {
	for _, id := range a.order {
		fn(a.weapons[id])
	}
}

// reset drops every instance.
func (a *Arsenal) reset() {
	a.weapons = make(map[string]*WeaponInstance)
	a.order = a.order[:0]
}
