package router

import (
	"github.com/alexchen/identity-vault/internal/application"
	"github.com/alexchen/identity-vault/internal/container"
	pginfra "github.com/alexchen/identity-vault/internal/infrastructure/postgres"
	handlers "github.com/alexchen/identity-vault/internal/interface/http"
	"github.com/alexchen/identity-vault/internal/router/modules"
)

// InitModules builds every service from the container singletons and
// registers the feature modules. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	vaultSvc := &application.VaultService{
		Users:        pginfra.NewUserRepository(pool),
		Education:    pginfra.NewEducationRepository(pool),
		Experience:   pginfra.NewExperienceRepository(pool),
		Projects:     pginfra.NewProjectRepository(pool),
		Skills:       pginfra.NewSkillRepository(pool),
		Awards:       pginfra.NewAwardRepository(pool),
		Redis:        container.GetRedis(),
		Logger:       logger,
		DemoFullName: cfg.DemoFullName,
		DemoSummary:  cfg.DemoSummary,
	}

	progressRepo := pginfra.NewProgressRepository(pool)

	searchSvc := &application.SearchService{
		ES:     container.GetES(),
		Index:  cfg.ESUpdatesIndex,
		Logger: logger,
	}

	ingestSvc := &application.IngestService{
		Vault:    vaultSvc,
		Progress: progressRepo,
		AI:       container.GetAI(),
		Indexer:  searchSvc,
		Logger:   logger,
	}
	if pub := container.GetRabbitPub(); pub != nil {
		ingestSvc.Queue = pub
	}

	linkedinSvc := &application.LinkedInService{
		Vault:    vaultSvc,
		Progress: progressRepo,
		AI:       container.GetAI(),
	}
	resumeSvc := &application.ResumeService{
		Vault: vaultSvc,
		AI:    container.GetAI(),
	}
	interviewSvc := &application.InterviewService{
		Vault:    vaultSvc,
		AI:       container.GetAI(),
		Sessions: container.GetSessions(),
		Logger:   logger,
	}

	r.Add(modules.NewVaultModule(
		handlers.NewProfileHandler(vaultSvc, logger),
		handlers.NewVaultHandler(vaultSvc, logger),
	))
	r.Add(modules.NewProgressModule(
		handlers.NewProgressHandler(ingestSvc, searchSvc, logger),
	))
	r.Add(modules.NewAIModule(
		handlers.NewAIHandler(linkedinSvc, resumeSvc, logger),
	))
	r.Add(modules.NewInterviewModule(
		handlers.NewInterviewHandler(interviewSvc, logger),
	))
	r.Add(modules.NewDebugModule())
}
