package main

import (
	"fmt"

	"github.com/spf13/cobra"

	criusswiss "github.com/emmygrace/crius-swiss"
)

var systemsCmd = &cobra.Command{
	Use:   "systems",
	Short: "List supported house systems, ayanamsas and objects",
	RunE:  runSystems,
}

func init() {
	rootCmd.AddCommand(systemsCmd)
}

func runSystems(cmd *cobra.Command, args []string) error {
	fmt.Println("House systems:")
	for _, hs := range criusswiss.HouseSystems {
		fmt.Printf("  %-14s (code %c)\n", hs, hs.Code())
	}

	fmt.Println("\nAyanamsas (sidereal zodiac):")
	for _, a := range criusswiss.Ayanamsas {
		fmt.Printf("  %s\n", a)
	}

	fmt.Println("\nObjects:")
	for _, obj := range criusswiss.Objects {
		fmt.Printf("  %s\n", obj)
	}

	return nil
}
