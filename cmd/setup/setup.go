package setup

import (
	"github.com/spf13/cobra"

	accountRepo "github.com/pawhub/pawhub/api/account/repository"
	accountService "github.com/pawhub/pawhub/api/account/service"
	catalogRepo "github.com/pawhub/pawhub/api/catalog/repository"
	"github.com/pawhub/pawhub/constants"
	"github.com/pawhub/pawhub/lib"
	"github.com/pawhub/pawhub/models/catalog"
)

var configFile string
var withDemoData bool

func init() {
	pf := StartCmd.PersistentFlags()
	pf.StringVarP(&configFile, "config", "c",
		"config/config.yaml", "this parameter is used to start the service application")
	pf.BoolVar(&withDemoData, "demo", false,
		"seed a demo shelter with a few listings")
}

var StartCmd = &cobra.Command{
	Use:          "setup",
	Short:        "Set up data for the application",
	Example:      "{execfile} setup -c config/config.yaml --demo",
	SilenceUsage: true,
	PreRun: func(cmd *cobra.Command, args []string) {
		lib.SetConfigPath(configFile)
	},
	Run: func(cmd *cobra.Command, args []string) {
		config := lib.NewConfig()
		logger := lib.NewLogger(config)
		db := lib.NewDatabase(config, logger)

		userRepository := accountRepo.NewUserRepository(db, logger)
		userService := accountService.NewUserService(logger, config, userRepository)

		// Step 1: maintenance account from config
		if err := userService.SeedAdmin(); err != nil {
			logger.Zap.Fatalf("failed to seed admin user: %v", err)
		}
		logger.Zap.Info("Step 1: admin user seeded")

		if !withDemoData {
			logger.Zap.Info("Setup completed")
			return
		}

		// Step 2: demo shelter and listings
		shelterRepository := catalogRepo.NewShelterRepository(db, logger)
		animalRepository := catalogRepo.NewAnimalRepository(db, logger)

		shelter := &catalog.Shelter{
			Name:  "Sunny Paws Rescue",
			City:  "Portland",
			Email: "hello@sunnypaws.example",
			Phone: "+1-503-555-0117",
		}

		qr, err := shelterRepository.Query(&catalog.ShelterQueryParam{Keywords: shelter.Name})
		if err != nil {
			logger.Zap.Fatalf("failed to query shelters: %v", err)
		}
		if len(qr.List) > 0 {
			logger.Zap.Info("Step 2: demo shelter already exists, skipping")
			return
		}

		if err := shelterRepository.Create(shelter); err != nil {
			logger.Zap.Fatalf("failed to create demo shelter: %v", err)
		}

		demoAnimals := catalog.Animals{
			{
				Name:        "Biscuit",
				Species:     "dog",
				Breed:       "Labrador Retriever",
				Gender:      "male",
				AgeMonths:   18,
				Size:        "large",
				Description: "Energetic lab mix who loves fetch and long walks.",
				Status:      constants.AnimalStatusAvailable,
				ShelterID:   shelter.ID,
			},
			{
				Name:        "Mochi",
				Species:     "cat",
				Breed:       "Domestic Shorthair",
				Gender:      "female",
				AgeMonths:   8,
				Size:        "small",
				Description: "Quiet lap cat, gets along with other cats.",
				Status:      constants.AnimalStatusAvailable,
				ShelterID:   shelter.ID,
			},
			{
				Name:        "Clover",
				Species:     "rabbit",
				Breed:       "Holland Lop",
				Gender:      "female",
				AgeMonths:   12,
				Size:        "small",
				Description: "Litter trained and friendly with children.",
				Status:      constants.AnimalStatusPending,
				ShelterID:   shelter.ID,
			},
		}

		for _, animal := range demoAnimals {
			if err := animalRepository.Create(animal); err != nil {
				logger.Zap.Fatalf("failed to create demo listing %s: %v", animal.Name, err)
			}
		}
		logger.Zap.Infof("Step 2: demo shelter seeded with %d listings", len(demoAnimals))

		logger.Zap.Info("Setup completed")
	},
}
