package api

import (
	"fmt"

	"gorm.io/gorm"

	adminsmemory "github.com/Apurer/pet-adoption-center/internal/domains/admins/adapters/memory"
	adminsobs "github.com/Apurer/pet-adoption-center/internal/domains/admins/adapters/observability"
	adminspostgres "github.com/Apurer/pet-adoption-center/internal/domains/admins/adapters/persistence/postgres"
	adminsapp "github.com/Apurer/pet-adoption-center/internal/domains/admins/application"
	adminsports "github.com/Apurer/pet-adoption-center/internal/domains/admins/ports"
	adoptersmemory "github.com/Apurer/pet-adoption-center/internal/domains/adopters/adapters/memory"
	adoptersobs "github.com/Apurer/pet-adoption-center/internal/domains/adopters/adapters/observability"
	adopterspostgres "github.com/Apurer/pet-adoption-center/internal/domains/adopters/adapters/persistence/postgres"
	adoptersapp "github.com/Apurer/pet-adoption-center/internal/domains/adopters/application"
	adoptersports "github.com/Apurer/pet-adoption-center/internal/domains/adopters/ports"
	adoptionslookup "github.com/Apurer/pet-adoption-center/internal/domains/adoptions/adapters/lookup"
	adoptionsmemory "github.com/Apurer/pet-adoption-center/internal/domains/adoptions/adapters/memory"
	adoptionsobs "github.com/Apurer/pet-adoption-center/internal/domains/adoptions/adapters/observability"
	adoptionspostgres "github.com/Apurer/pet-adoption-center/internal/domains/adoptions/adapters/persistence/postgres"
	adoptionsapp "github.com/Apurer/pet-adoption-center/internal/domains/adoptions/application"
	adoptionsports "github.com/Apurer/pet-adoption-center/internal/domains/adoptions/ports"
	dashboardobs "github.com/Apurer/pet-adoption-center/internal/domains/dashboard/adapters/observability"
	dashboardapp "github.com/Apurer/pet-adoption-center/internal/domains/dashboard/application"
	dashboardports "github.com/Apurer/pet-adoption-center/internal/domains/dashboard/ports"
	favoriteslookup "github.com/Apurer/pet-adoption-center/internal/domains/favorites/adapters/lookup"
	favoritesmemory "github.com/Apurer/pet-adoption-center/internal/domains/favorites/adapters/memory"
	favoritesobs "github.com/Apurer/pet-adoption-center/internal/domains/favorites/adapters/observability"
	favoritespostgres "github.com/Apurer/pet-adoption-center/internal/domains/favorites/adapters/persistence/postgres"
	favoritesapp "github.com/Apurer/pet-adoption-center/internal/domains/favorites/application"
	favoritesports "github.com/Apurer/pet-adoption-center/internal/domains/favorites/ports"
	petsmemory "github.com/Apurer/pet-adoption-center/internal/domains/pets/adapters/memory"
	petsobs "github.com/Apurer/pet-adoption-center/internal/domains/pets/adapters/observability"
	petspostgres "github.com/Apurer/pet-adoption-center/internal/domains/pets/adapters/persistence/postgres"
	petsapp "github.com/Apurer/pet-adoption-center/internal/domains/pets/application"
	petsports "github.com/Apurer/pet-adoption-center/internal/domains/pets/ports"
	tokensmemory "github.com/Apurer/pet-adoption-center/internal/domains/tokens/adapters/memory"
	tokensobs "github.com/Apurer/pet-adoption-center/internal/domains/tokens/adapters/observability"
	tokenspostgres "github.com/Apurer/pet-adoption-center/internal/domains/tokens/adapters/persistence/postgres"
	tokensapp "github.com/Apurer/pet-adoption-center/internal/domains/tokens/application"
	tokensports "github.com/Apurer/pet-adoption-center/internal/domains/tokens/ports"
	vetlookup "github.com/Apurer/pet-adoption-center/internal/domains/veterinary/adapters/lookup"
	vetmemory "github.com/Apurer/pet-adoption-center/internal/domains/veterinary/adapters/memory"
	vetobs "github.com/Apurer/pet-adoption-center/internal/domains/veterinary/adapters/observability"
	vetpostgres "github.com/Apurer/pet-adoption-center/internal/domains/veterinary/adapters/persistence/postgres"
	vetapp "github.com/Apurer/pet-adoption-center/internal/domains/veterinary/application"
	vetports "github.com/Apurer/pet-adoption-center/internal/domains/veterinary/ports"
	"github.com/Apurer/pet-adoption-center/internal/platform/auth"
	platformobservability "github.com/Apurer/pet-adoption-center/internal/platform/observability"
)

// Services is the decorated use-case layer shared by the API, the worker and the CLI.
type Services struct {
	Tokens     *auth.Issuer
	Pets       petsports.Service
	Adopters   adoptersports.Service
	Admins     adminsports.Service
	Adoptions  adoptionsports.Service
	Favorites  favoritesports.Service
	Veterinary vetports.Service
	Dashboard  dashboardports.Service
	Revocation tokensports.Service
}

type repositories struct {
	pets              petsports.Repository
	adopters          adoptersports.Repository
	admins            adminsports.Repository
	adoptions         adoptionsports.Repository
	unitOfWork        adoptionsports.UnitOfWork
	favorites         favoritesports.Repository
	veterinary        vetports.Repository
	revocations       tokensports.Store
	petDependents     []petsports.Dependent
	adopterDependents []adoptersports.Dependent
}

// BuildServices composes every bounded context. A nil db selects the
// in-memory stores; otherwise the schema is expected to be migrated and
// foreign keys cascade deletes, so no dependents are registered.
func BuildServices(db *gorm.DB, cfg Config, instruments *platformobservability.Instruments) (*Services, error) {
	issuer, err := auth.NewIssuer(cfg.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("token issuer: %w", err)
	}
	repos := buildRepositories(db)
	hasher := auth.Hasher{}

	pets := petsobs.New(
		petsapp.NewService(repos.pets,
			petsapp.WithFavoriteCounter(repos.favorites),
			petsapp.WithDependents(repos.petDependents...),
		),
		instruments.Decorator("internal.domains.pets.application")...,
	)

	// Lookups resolve adopters through an undecorated service so that the
	// adopters context can depend on adoptions for release and counts.
	adopterDirectory := adoptersapp.NewService(repos.adopters, hasher, issuer)

	adoptions := adoptionsobs.New(
		adoptionsapp.NewService(repos.adoptions, repos.unitOfWork,
			adoptionsapp.WithPolicy(cfg.Policy),
			adoptionsapp.WithDirectories(
				adoptionslookup.Pets{Service: pets},
				adoptionslookup.Adopters{Service: adopterDirectory},
			),
		),
		instruments.Decorator("internal.domains.adoptions.application")...,
	)
	favorites := favoritesobs.New(
		favoritesapp.NewService(repos.favorites,
			favoritesapp.WithDirectories(
				favoriteslookup.Pets{Service: pets},
				favoriteslookup.Adopters{Service: adopterDirectory},
			),
		),
		instruments.Decorator("internal.domains.favorites.application")...,
	)
	adopters := adoptersobs.New(
		adoptersapp.NewService(repos.adopters, hasher, issuer,
			adoptersapp.WithActivityCounters(adoptions, favorites),
			adoptersapp.WithReleaser(adoptions),
			adoptersapp.WithDependents(repos.adopterDependents...),
		),
		instruments.Decorator("internal.domains.adopters.application")...,
	)
	admins := adminsobs.New(
		adminsapp.NewService(repos.admins, hasher, issuer),
		instruments.Decorator("internal.domains.admins.application")...,
	)
	veterinary := vetobs.New(
		vetapp.NewService(repos.veterinary, vetapp.WithPetDirectory(vetlookup.Pets{Service: pets})),
		instruments.Decorator("internal.domains.veterinary.application")...,
	)
	dashboard := dashboardobs.New(
		dashboardapp.NewService(pets, adopters, adoptions, veterinary),
		instruments.Decorator("internal.domains.dashboard.application")...,
	)
	revocation := tokensobs.New(
		tokensapp.NewService(repos.revocations),
		instruments.Decorator("internal.domains.tokens.application")...,
	)

	return &Services{
		Tokens:     issuer,
		Pets:       pets,
		Adopters:   adopters,
		Admins:     admins,
		Adoptions:  adoptions,
		Favorites:  favorites,
		Veterinary: veterinary,
		Dashboard:  dashboard,
		Revocation: revocation,
	}, nil
}

func buildRepositories(db *gorm.DB) repositories {
	if db != nil {
		adoptionStore := adoptionspostgres.NewStore(db)
		return repositories{
			pets:        petspostgres.NewRepository(db),
			adopters:    adopterspostgres.NewRepository(db),
			admins:      adminspostgres.NewRepository(db),
			adoptions:   adoptionStore,
			unitOfWork:  adoptionStore,
			favorites:   favoritespostgres.NewRepository(db),
			veterinary:  vetpostgres.NewRepository(db),
			revocations: tokenspostgres.NewStore(db),
		}
	}
	petRepo := petsmemory.NewRepository()
	adoptionStore := adoptionsmemory.NewStore(petRepo)
	favoriteRepo := favoritesmemory.NewRepository()
	vetRepo := vetmemory.NewRepository()
	return repositories{
		pets:              petRepo,
		adopters:          adoptersmemory.NewRepository(),
		admins:            adminsmemory.NewRepository(),
		adoptions:         adoptionStore,
		unitOfWork:        adoptionStore,
		favorites:         favoriteRepo,
		veterinary:        vetRepo,
		revocations:       tokensmemory.NewStore(),
		petDependents:     []petsports.Dependent{adoptionStore, favoriteRepo, vetRepo},
		adopterDependents: []adoptersports.Dependent{favoriteRepo},
	}
}
