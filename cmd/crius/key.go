package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	criusswiss "github.com/emmygrace/crius-swiss"
	"github.com/emmygrace/crius-swiss/internal/cachekey"
)

var keyCmd = &cobra.Command{
	Use:   "key [objects...]",
	Short: "Show the cache key derived for a calculation",
	Long: `Derive and print the canonical cache key for a calculation request.

Useful for verifying that two requests you expect to share a cache entry
actually do (the key is timezone-normalized, coordinate-rounded and
object-order independent).

Example:
  crius key --time 2024-01-01T12:00:00Z --lat 40.7128 --lon -74.0060 sun moon`,
	Args: cobra.MinimumNArgs(1),
	RunE: runKey,
}

var (
	keyTime     string
	keyLat      float64
	keyLon      float64
	keyNoGeo    bool
	keyZodiac   string
	keyAyanamsa string
	keyHouses   string
)

func init() {
	keyCmd.Flags().StringVar(&keyTime, "time", "", "instant in RFC 3339 format (required)")
	keyCmd.Flags().Float64Var(&keyLat, "lat", 0, "latitude in decimal degrees")
	keyCmd.Flags().Float64Var(&keyLon, "lon", 0, "longitude in decimal degrees")
	keyCmd.Flags().BoolVar(&keyNoGeo, "no-location", false, "derive the key without a location")
	keyCmd.Flags().StringVar(&keyZodiac, "zodiac", "tropical", "zodiac type (tropical, sidereal)")
	keyCmd.Flags().StringVar(&keyAyanamsa, "ayanamsa", "", "ayanamsa for sidereal calculations")
	keyCmd.Flags().StringVar(&keyHouses, "houses", "placidus", "house system")
	_ = keyCmd.MarkFlagRequired("time")
	rootCmd.AddCommand(keyCmd)
}

func runKey(cmd *cobra.Command, args []string) error {
	instant, err := time.Parse(time.RFC3339, keyTime)
	if err != nil {
		return fmt.Errorf("parsing --time: %w", err)
	}

	zodiac, err := criusswiss.ParseZodiacType(keyZodiac)
	if err != nil {
		return err
	}
	ayanamsa, err := criusswiss.ParseAyanamsa(keyAyanamsa)
	if err != nil {
		return err
	}
	houses, err := criusswiss.ParseHouseSystem(keyHouses)
	if err != nil {
		return err
	}

	in := cachekey.Input{
		Instant:     instant,
		HasLocation: !keyNoGeo,
		Lat:         keyLat,
		Lon:         keyLon,
		Zodiac:      string(zodiac),
		Ayanamsa:    string(ayanamsa),
		HouseSystem: string(houses),
		Objects:     args,
	}

	fmt.Println(cachekey.Compute(in))
	return nil
}
