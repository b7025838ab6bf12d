package rentkit

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rentvehicle/rentkit/pkg/account"
	"github.com/rentvehicle/rentkit/pkg/catalog"
	"github.com/rentvehicle/rentkit/pkg/money"
)

// Seed is the initial data an App starts with.
type Seed struct {
	Vehicles []SeedVehicle `yaml:"vehicles"`
	Users    []SeedUser    `yaml:"users"`
}

// SeedVehicle is one fleet entry in a seed file. Vehicles start available.
type SeedVehicle struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	BaseRate int64  `yaml:"base_rate"`
}

// SeedUser is one account entry in a seed file. The password is plain text
// in the file and hashed during ApplySeed.
type SeedUser struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	Role     string `yaml:"role"`
}

// LoadSeedFile reads and parses a YAML seed file.
func LoadSeedFile(path string) (Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("read seed file: %w", err)
	}

	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return Seed{}, fmt.Errorf("parse seed file: %w", err)
	}
	return seed, nil
}

// DefaultSeed returns the built-in demo fleet and accounts used when no seed
// file is configured.
func DefaultSeed() Seed {
	return Seed{
		Vehicles: []SeedVehicle{
			{ID: "V001", Name: "Toyota Avanza", Category: "MPV", BaseRate: 15000},
			{ID: "V002", Name: "Honda Jazz", Category: "Hatchback", BaseRate: 12000},
			{ID: "V003", Name: "Mitsubishi Pajero", Category: "SUV", BaseRate: 25000},
			{ID: "V004", Name: "Toyota Fortuner", Category: "SUV", BaseRate: 30000},
			{ID: "V005", Name: "Honda CBR 150", Category: "Motor", BaseRate: 8000},
		},
		Users: []SeedUser{
			{Username: "admin", Password: "admin123", Name: "Admin", Role: "administrator"},
			{Username: "customer1", Password: "pass123", Name: "Budi Santoso", Role: "customer"},
		},
	}
}

// ApplySeed loads the seed into the app's stores. It fails on the first
// invalid or duplicate entry, leaving earlier entries in place.
func (a *App) ApplySeed(seed Seed) error {
	for _, v := range seed.Vehicles {
		err := a.Catalog.Add(catalog.Vehicle{
			ID:        v.ID,
			Name:      v.Name,
			Category:  v.Category,
			BaseRate:  money.Amount(v.BaseRate),
			Available: true,
		})
		if err != nil {
			return fmt.Errorf("seed vehicle %s: %w", v.ID, err)
		}
	}

	for _, u := range seed.Users {
		role, err := account.ParseRole(u.Role)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", u.Username, err)
		}
		if _, err := a.Accounts.Register(u.Username, u.Password, u.Name, role); err != nil {
			return fmt.Errorf("seed user %s: %w", u.Username, err)
		}
	}
	return nil
}
