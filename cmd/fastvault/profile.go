package fastvault

import (
	"fmt"
	"os"
	"strings"

	"github.com/helpmefast/fastvault/internal/model"
	"github.com/helpmefast/fastvault/internal/service"
	"github.com/helpmefast/fastvault/internal/units"
	"github.com/helpmefast/fastvault/internal/vault"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your profile",
}

var (
	profileName     string
	profileWeight   float64
	profileHeight   float64
	profileAge      int
	profileGender   string
	profileActivity string
	profileUnit     string
)

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set profile fields and recompute daily energy",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withVault(func(s vault.Store) error {
			cfg, err := service.GetConfig(s)
			if err != nil {
				return err
			}
			unit := cfg.WeightUnit
			if strings.TrimSpace(profileUnit) != "" {
				unit = model.WeightUnit(profileUnit)
			}
			kg, err := units.ToKg(profileWeight, unit)
			if err != nil {
				return err
			}

			p, err := service.SaveProfile(s, service.ProfileInput{
				Name:          profileName,
				WeightKg:      kg,
				HeightCm:      profileHeight,
				Age:           profileAge,
				Gender:        model.Gender(profileGender),
				ActivityLevel: model.ActivityLevel(profileActivity),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved profile for %s (TDEE %.0f kcal/day)\n", p.Name, p.TMB)
			return nil
		})
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withVault(func(s vault.Store) error {
			p, err := service.GetProfile(s)
			if err != nil {
				return err
			}
			cfg, err := service.GetConfig(s)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Name: %s\n", p.Name)
			fmt.Fprintf(out, "Weight: %s %s\n", units.FormatWeight(p.Weight, cfg.WeightUnit), cfg.WeightUnit)
			fmt.Fprintf(out, "Height: %.0f cm\n", p.Height)
			fmt.Fprintf(out, "Age: %d\n", p.Age)
			fmt.Fprintf(out, "Gender: %s\n", p.Gender)
			fmt.Fprintf(out, "Activity: %s\n", p.ActivityLevel)
			fmt.Fprintf(out, "TDEE: %.0f kcal/day\n", p.TMB)
			if p.Avatar != "" {
				fmt.Fprintf(out, "Avatar: %s\n", p.Avatar)
			}
			return nil
		})
	},
}

var profileAvatarCmd = &cobra.Command{
	Use:   "avatar <path>",
	Short: "Set the profile avatar image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read avatar %q: %w", args[0], err)
		}
		return withVault(func(s vault.Store) error {
			handle, err := service.SaveAvatar(s, data)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved avatar %s\n", handle)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSetCmd, profileShowCmd, profileAvatarCmd)

	profileSetCmd.Flags().StringVar(&profileName, "name", "", "Display name")
	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "Body weight in the configured unit")
	profileSetCmd.Flags().StringVar(&profileUnit, "unit", "", "Weight unit for --weight: kg or lbs")
	profileSetCmd.Flags().Float64Var(&profileHeight, "height", 0, "Height in cm")
	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "Age in years")
	profileSetCmd.Flags().StringVar(&profileGender, "gender", "", "male or female")
	profileSetCmd.Flags().StringVar(&profileActivity, "activity", "", "sedentary, light, moderate, active, or very_active")
	_ = profileSetCmd.MarkFlagRequired("weight")
	_ = profileSetCmd.MarkFlagRequired("height")
	_ = profileSetCmd.MarkFlagRequired("age")
	_ = profileSetCmd.MarkFlagRequired("gender")
	_ = profileSetCmd.MarkFlagRequired("activity")
}
