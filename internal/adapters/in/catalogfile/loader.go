// Package catalogfile reads the catalog seed file used to bootstrap the
// kitchen catalog at start-up.
//
// Example:
//
//	weekly:
//	  - day: Lundi
//	    diet: Sans sel
//	    meal_type: Déjeuner
//	    dish: Poisson vapeur
//	    description: légumes verts
//	employee_menus:
//	  - name: Poulet yassa
//	    base_price: "1500"
package catalogfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"clinicmeals/internal/core/application/usecases/commands"
	"clinicmeals/internal/core/domain/model/catalog"
	"clinicmeals/internal/core/domain/model/kernel"

	"gopkg.in/yaml.v3"
)

type file struct {
	Weekly        []weeklyEntry `yaml:"weekly"`
	EmployeeMenus []menuEntry   `yaml:"employee_menus"`
}

type weeklyEntry struct {
	Day         string `yaml:"day"`
	Diet        string `yaml:"diet"`
	MealType    string `yaml:"meal_type"`
	Dish        string `yaml:"dish"`
	Description string `yaml:"description"`
}

type menuEntry struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	BasePrice   string `yaml:"base_price"`
}

// Load reads and parses the seed file at path.
func Load(path string) (commands.SeedCatalogCommand, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return commands.SeedCatalogCommand{}, fmt.Errorf("read catalog seed: %w", err)
	}
	return Parse(bytes.NewReader(data))
}

// Parse decodes a seed document. Unknown keys are rejected, and every bad
// entry is reported with its position.
func Parse(r io.Reader) (commands.SeedCatalogCommand, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f file
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return commands.SeedCatalogCommand{}, fmt.Errorf("parse catalog seed: %w", err)
	}

	var errList []error
	weekly := make([]commands.SeedWeeklyMenuItem, 0, len(f.Weekly))
	for i, e := range f.Weekly {
		item, err := e.toSeed()
		if err != nil {
			errList = append(errList, fmt.Errorf("weekly[%d]: %w", i, err))
			continue
		}
		weekly = append(weekly, item)
	}
	menus := make([]commands.SeedEmployeeMenu, 0, len(f.EmployeeMenus))
	for i, e := range f.EmployeeMenus {
		menu, err := e.toSeed()
		if err != nil {
			errList = append(errList, fmt.Errorf("employee_menus[%d]: %w", i, err))
			continue
		}
		menus = append(menus, menu)
	}
	if err := errors.Join(errList...); err != nil {
		return commands.SeedCatalogCommand{}, err
	}
	return commands.NewSeedCatalogCommand(weekly, menus)
}

func (e weeklyEntry) toSeed() (commands.SeedWeeklyMenuItem, error) {
	day, dayErr := kernel.DayOfWeekFromString(e.Day)
	diet, dietErr := kernel.DietFromString(e.Diet)
	mealType, mealErr := kernel.MealTypeFromString(e.MealType)
	if err := errors.Join(dayErr, dietErr, mealErr); err != nil {
		return commands.SeedWeeklyMenuItem{}, err
	}
	return commands.SeedWeeklyMenuItem{
		Slot:        catalog.Slot{Day: day, Diet: diet, MealType: mealType},
		DishName:    e.Dish,
		Description: e.Description,
	}, nil
}

func (e menuEntry) toSeed() (commands.SeedEmployeeMenu, error) {
	price, err := kernel.PriceFromString(e.BasePrice)
	if err != nil {
		return commands.SeedEmployeeMenu{}, err
	}
	return commands.SeedEmployeeMenu{Name: e.Name, Description: e.Description, BasePrice: price}, nil
}
