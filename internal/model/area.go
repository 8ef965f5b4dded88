package model

import "fmt"

// Area is a life-context tag shared by projects and items.
type Area string

const (
	AreaTennis       Area = "tennis"
	AreaRose         Area = "rose"
	AreaProfessional Area = "professional"
	AreaPersonal     Area = "personal"
)

// Areas lists every valid area, in display order.
func Areas() []Area {
	return []Area{AreaTennis, AreaRose, AreaProfessional, AreaPersonal}
}

// Valid reports whether a is one of the known areas.
func (a Area) Valid() bool {
	switch a {
	case AreaTennis, AreaRose, AreaProfessional, AreaPersonal:
		return true
	}
	return false
}

// ParseArea converts a wire string to an Area.
func ParseArea(s string) (Area, error) {
	a := Area(s)
	if !a.Valid() {
		return "", fmt.Errorf("unknown area %q", s)
	}
	return a, nil
}
