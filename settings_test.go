package criusswiss

import (
	"errors"
	"testing"
)

func TestParseHouseSystem(t *testing.T) {
	tests := []struct {
		in   string
		want HouseSystem
	}{
		{"placidus", Placidus},
		{"PLACIDUS", Placidus},
		{"whole_sign", WholeSign},
		{"koch", Koch},
		{"equal", Equal},
		{"regiomontanus", Regiomontanus},
		{"campanus", Campanus},
		{"alcabitius", Alcabitius},
		{"morinus", Morinus},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHouseSystem(tt.in)
			if err != nil {
				t.Fatalf("ParseHouseSystem(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseHouseSystem(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	_, err := ParseHouseSystem("topocentric")
	if !errors.Is(err, ErrUnknownHouseSystem) {
		t.Errorf("ParseHouseSystem() error = %v, want ErrUnknownHouseSystem", err)
	}
}

func TestHouseSystem_Code(t *testing.T) {
	tests := []struct {
		system HouseSystem
		want   byte
	}{
		{Placidus, 'P'},
		{WholeSign, 'W'},
		{Koch, 'K'},
		{Equal, 'E'},
		{Regiomontanus, 'R'},
		{Campanus, 'C'},
		{Alcabitius, 'A'},
		{Morinus, 'M'},
		{HouseSystem("unknown"), 'P'}, // falls back to Placidus
		{HouseSystem(""), 'P'},
	}

	for _, tt := range tests {
		if got := tt.system.Code(); got != tt.want {
			t.Errorf("%q.Code() = %c, want %c", tt.system, got, tt.want)
		}
	}
}

func TestParseAyanamsa(t *testing.T) {
	for _, a := range Ayanamsas {
		got, err := ParseAyanamsa(string(a))
		if err != nil {
			t.Errorf("ParseAyanamsa(%q) error = %v", a, err)
		}
		if got != a {
			t.Errorf("ParseAyanamsa(%q) = %v", a, got)
		}
	}

	// Empty means provider default.
	got, err := ParseAyanamsa("")
	if err != nil || got != "" {
		t.Errorf("ParseAyanamsa(\"\") = %v, %v; want empty, nil", got, err)
	}

	// Case folding.
	got, err = ParseAyanamsa("Lahiri")
	if err != nil || got != AyanamsaLahiri {
		t.Errorf("ParseAyanamsa(\"Lahiri\") = %v, %v", got, err)
	}

	_, err = ParseAyanamsa("galactic_center")
	if !errors.Is(err, ErrUnknownAyanamsa) {
		t.Errorf("ParseAyanamsa() error = %v, want ErrUnknownAyanamsa", err)
	}
}

func TestParseZodiacType(t *testing.T) {
	got, err := ParseZodiacType("tropical")
	if err != nil || got != Tropical {
		t.Errorf("ParseZodiacType(\"tropical\") = %v, %v", got, err)
	}

	got, err = ParseZodiacType("Sidereal")
	if err != nil || got != Sidereal {
		t.Errorf("ParseZodiacType(\"Sidereal\") = %v, %v", got, err)
	}

	_, err = ParseZodiacType("draconic")
	if !errors.Is(err, ErrUnknownZodiacType) {
		t.Errorf("ParseZodiacType() error = %v, want ErrUnknownZodiacType", err)
	}
}
