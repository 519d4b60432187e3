package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/alexchen/identity-vault/config"
	"github.com/alexchen/identity-vault/internal/domain/entity"
	"github.com/alexchen/identity-vault/internal/domain/repository"
	pginfra "github.com/alexchen/identity-vault/internal/infrastructure/postgres"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

// Seeds the demo profile with a small vault so the API has data to show
// before the first progress update comes in.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx := context.Background()
	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer pool.Close()

	users := pginfra.NewUserRepository(pool)
	u, err := users.GetFirst(ctx)
	switch err {
	case nil:
		log.Printf("user %s already exists, seeding entries only", u.FullName)
	case repository.ErrNotFound:
		u = &entity.User{
			FullName: cfg.DemoFullName,
			Email:    "alex.chen@example.com",
			Location: "San Francisco, CA",
			Summary:  cfg.DemoSummary,
			Links: []entity.Link{
				{Platform: entity.PlatformGitHub, URL: "https://github.com/alexchen"},
				{Platform: entity.PlatformLinkedIn, URL: "https://linkedin.com/in/alexchen"},
			},
		}
		if err := users.Create(ctx, u); err != nil {
			log.Fatalf("create user: %v", err)
		}
		log.Printf("created demo user %s", u.FullName)
	default:
		log.Fatalf("get user: %v", err)
	}

	edu := pginfra.NewEducationRepository(pool)
	if err := edu.Create(ctx, &entity.EducationEntry{
		UserID:       u.ID,
		Institution:  "UC Berkeley",
		Degree:       "Bachelor of Science",
		FieldOfStudy: "Computer Science",
		StartDate:    date(2022, time.September, 1),
		Achievements: []string{"Dean's List 2023"},
	}); err != nil {
		log.Fatalf("seed education: %v", err)
	}

	skills := pginfra.NewSkillRepository(pool)
	goSkill := &entity.SkillEntry{
		UserID:      u.ID,
		Name:        "Go",
		Category:    entity.SkillCategoryProgramming,
		Proficiency: entity.ProficiencyIntermediate,
	}
	if err := skills.Create(ctx, goSkill); err != nil {
		log.Fatalf("seed skill: %v", err)
	}

	projects := pginfra.NewProjectRepository(pool)
	if err := projects.Create(ctx, &entity.ProjectEntry{
		UserID:       u.ID,
		Name:         "Course Planner",
		Description:  "Degree requirement tracker for CS majors",
		StartDate:    date(2024, time.January, 10),
		EndDate:      datePtr(2024, time.April, 2),
		Technologies: []string{"Go", "PostgreSQL", "React"},
		Skills:       []uuid.UUID{goSkill.ID},
	}); err != nil {
		log.Fatalf("seed project: %v", err)
	}

	log.Println("seed complete")
}
