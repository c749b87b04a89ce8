package criusswiss

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for settings validation.
var (
	// ErrUnknownHouseSystem indicates an unrecognized house system name.
	ErrUnknownHouseSystem = errors.New("criusswiss: unknown house system")

	// ErrUnknownAyanamsa indicates an unrecognized ayanamsa name.
	ErrUnknownAyanamsa = errors.New("criusswiss: unknown ayanamsa")

	// ErrUnknownZodiacType indicates an unrecognized zodiac type.
	ErrUnknownZodiacType = errors.New("criusswiss: unknown zodiac type")
)

// ZodiacType selects the zodiac reference frame for calculations.
type ZodiacType string

// Recognized zodiac types.
const (
	Tropical ZodiacType = "tropical"
	Sidereal ZodiacType = "sidereal"
)

// ParseZodiacType parses a zodiac type name (case-insensitive).
func ParseZodiacType(s string) (ZodiacType, error) {
	switch ZodiacType(strings.ToLower(s)) {
	case Tropical:
		return Tropical, nil
	case Sidereal:
		return Sidereal, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownZodiacType, s)
}

// Ayanamsa names a sidereal correction model. The zero value means the
// provider default (Lahiri).
type Ayanamsa string

// The named ayanamsa systems. Chitrapaksha is an alias for Lahiri.
const (
	AyanamsaLahiri           Ayanamsa = "lahiri"
	AyanamsaChitrapaksha     Ayanamsa = "chitrapaksha"
	AyanamsaFaganBradley     Ayanamsa = "fagan_bradley"
	AyanamsaDeLuce           Ayanamsa = "de_luce"
	AyanamsaRaman            Ayanamsa = "raman"
	AyanamsaKrishnamurti     Ayanamsa = "krishnamurti"
	AyanamsaYukteshwar       Ayanamsa = "yukteshwar"
	AyanamsaDjwhalKhul       Ayanamsa = "djwhal_khul"
	AyanamsaTrueCitra        Ayanamsa = "true_citra"
	AyanamsaTrueRevati       Ayanamsa = "true_revati"
	AyanamsaAryabhata        Ayanamsa = "aryabhata"
	AyanamsaAryabhataMeanSun Ayanamsa = "aryabhata_mean_sun"
)

// Ayanamsas lists every recognized ayanamsa name.
var Ayanamsas = []Ayanamsa{
	AyanamsaLahiri,
	AyanamsaChitrapaksha,
	AyanamsaFaganBradley,
	AyanamsaDeLuce,
	AyanamsaRaman,
	AyanamsaKrishnamurti,
	AyanamsaYukteshwar,
	AyanamsaDjwhalKhul,
	AyanamsaTrueCitra,
	AyanamsaTrueRevati,
	AyanamsaAryabhata,
	AyanamsaAryabhataMeanSun,
}

// ParseAyanamsa parses an ayanamsa name (case-insensitive). The empty
// string is valid and means the provider default.
func ParseAyanamsa(s string) (Ayanamsa, error) {
	if s == "" {
		return "", nil
	}
	a := Ayanamsa(strings.ToLower(s))
	for _, known := range Ayanamsas {
		if a == known {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAyanamsa, s)
}

// HouseSystem names a method of dividing the sky into twelve houses.
type HouseSystem string

// The supported house systems.
const (
	Placidus      HouseSystem = "placidus"
	WholeSign     HouseSystem = "whole_sign"
	Koch          HouseSystem = "koch"
	Equal         HouseSystem = "equal"
	Regiomontanus HouseSystem = "regiomontanus"
	Campanus      HouseSystem = "campanus"
	Alcabitius    HouseSystem = "alcabitius"
	Morinus       HouseSystem = "morinus"
)

// HouseSystems lists every supported house system.
var HouseSystems = []HouseSystem{
	Placidus,
	WholeSign,
	Koch,
	Equal,
	Regiomontanus,
	Campanus,
	Alcabitius,
	Morinus,
}

// houseSystemCodes maps each house system to its one-byte Swiss
// Ephemeris identifier.
var houseSystemCodes = map[HouseSystem]byte{
	Placidus:      'P',
	WholeSign:     'W',
	Koch:          'K',
	Equal:         'E',
	Regiomontanus: 'R',
	Campanus:      'C',
	Alcabitius:    'A',
	Morinus:       'M',
}

// ParseHouseSystem parses a house system name (case-insensitive).
func ParseHouseSystem(s string) (HouseSystem, error) {
	hs := HouseSystem(strings.ToLower(s))
	if _, ok := houseSystemCodes[hs]; ok {
		return hs, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownHouseSystem, s)
}

// Code returns the one-byte Swiss Ephemeris code for the house system.
// Unknown systems fall back to Placidus.
func (h HouseSystem) Code() byte {
	if code, ok := houseSystemCodes[h]; ok {
		return code
	}
	return 'P'
}

// Object identifies a celestial body or derived point.
type Object string

// The recognized calculation objects.
const (
	ObjectSun       Object = "sun"
	ObjectMoon      Object = "moon"
	ObjectMercury   Object = "mercury"
	ObjectVenus     Object = "venus"
	ObjectMars      Object = "mars"
	ObjectJupiter   Object = "jupiter"
	ObjectSaturn    Object = "saturn"
	ObjectUranus    Object = "uranus"
	ObjectNeptune   Object = "neptune"
	ObjectPluto     Object = "pluto"
	ObjectChiron    Object = "chiron"
	ObjectNorthNode Object = "north_node"
	ObjectSouthNode Object = "south_node"
)

// Objects lists every recognized calculation object.
var Objects = []Object{
	ObjectSun,
	ObjectMoon,
	ObjectMercury,
	ObjectVenus,
	ObjectMars,
	ObjectJupiter,
	ObjectSaturn,
	ObjectUranus,
	ObjectNeptune,
	ObjectPluto,
	ObjectChiron,
	ObjectNorthNode,
	ObjectSouthNode,
}

// Settings configures a position calculation.
type Settings struct {
	// ZodiacType selects tropical or sidereal coordinates.
	// The zero value means tropical.
	ZodiacType ZodiacType

	// Ayanamsa selects the sidereal correction model. Ignored for
	// tropical calculations; the zero value means the provider default
	// (Lahiri).
	Ayanamsa Ayanamsa

	// HouseSystem selects the house division method. The zero value
	// means Placidus.
	HouseSystem HouseSystem

	// IncludeObjects is the set of objects to calculate. Order carries
	// no meaning; two settings differing only in object order are
	// equivalent.
	IncludeObjects []Object
}
