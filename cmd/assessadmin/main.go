package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/minhhquann88/DoAn-sub001/config"
	"github.com/minhhquann88/DoAn-sub001/internal/controller/middleware"
	"github.com/minhhquann88/DoAn-sub001/internal/database"
	"github.com/minhhquann88/DoAn-sub001/internal/logger"
	"github.com/minhhquann88/DoAn-sub001/internal/model"
	"github.com/minhhquann88/DoAn-sub001/internal/repository"
	"github.com/minhhquann88/DoAn-sub001/internal/service"
	"github.com/rs/zerolog/log"
	"gopkg.in/alecthomas/kingpin.v2"
	"gorm.io/gorm"
)

var (
	migrateCmd = kingpin.Command("migrate", "Create or update the assessment tables")

	statsCmd    = kingpin.Command("stats", "Print statistics for a test as JSON")
	statsTestID = statsCmd.Arg("test-id", "Test ID").Required().Uint()

	pendingCmd    = kingpin.Command("pending", "List essay answers still waiting for feedback")
	pendingTestID = pendingCmd.Arg("test-id", "Test ID").Required().Uint()

	courseCmd          = kingpin.Command("course", "Register a course owned by an instructor")
	courseTitle        = courseCmd.Flag("title", "Course title").Required().String()
	courseInstructorID = courseCmd.Flag("instructor-id", "Owning instructor's user ID").Required().Uint()

	enrollCmd      = kingpin.Command("enroll", "Enroll a learner in a course")
	enrollCourseID = enrollCmd.Flag("course-id", "Course ID").Required().Uint()
	enrollUserID   = enrollCmd.Flag("user-id", "Learner's user ID").Required().Uint()

	tokenCmd    = kingpin.Command("token", "Issue a bearer token for local testing")
	tokenUserID = tokenCmd.Flag("user-id", "Subject user ID").Required().Uint()
	tokenRole   = tokenCmd.Flag("role", "Caller role").Default(string(service.RoleStudent)).Enum(string(service.RoleStudent), string(service.RoleInstructor))
	tokenTTL    = tokenCmd.Flag("ttl", "Token lifetime").Default("24h").Duration()
)

func main() {
	kingpin.UsageTemplate(kingpin.CompactUsageTemplate).Version("1.0")
	kingpin.CommandLine.Help = "Assessment engine administration"
	command := kingpin.Parse()

	logger.Init("info", true)
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	logger.Init(cfg.Log.Level, cfg.Log.Pretty)

	if command == tokenCmd.FullCommand() {
		token, err := middleware.NewAuthenticator(cfg).IssueToken(*tokenUserID, service.Role(*tokenRole), *tokenTTL)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to sign token")
		}
		fmt.Println(token)
		return
	}

	db, err := database.NewDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	ctx := context.Background()

	switch command {
	case migrateCmd.FullCommand():
		if err := database.Migrate(db); err != nil {
			log.Fatal().Err(err).Msg("Migration failed")
		}
	case statsCmd.FullCommand():
		runStats(ctx, db, *statsTestID)
	case pendingCmd.FullCommand():
		runPending(ctx, db, *pendingTestID)
	case courseCmd.FullCommand():
		course := model.Course{Title: *courseTitle, InstructorID: *courseInstructorID}
		if err := repository.NewCourseRepository(db).Create(ctx, &course); err != nil {
			log.Fatal().Err(err).Msg("Failed to create course")
		}
		log.Info().Uint("courseID", course.ID).Uint("instructorID", course.InstructorID).Msg("Course created")
	case enrollCmd.FullCommand():
		err := repository.NewCourseRepository(db).Enroll(ctx, *enrollCourseID, *enrollUserID)
		if database.IsUniqueViolation(err) {
			log.Info().Uint("courseID", *enrollCourseID).Uint("userID", *enrollUserID).Msg("Already enrolled")
			return
		}
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to enroll learner")
		}
		log.Info().Uint("courseID", *enrollCourseID).Uint("userID", *enrollUserID).Msg("Learner enrolled")
	default:
		log.Fatal().Str("command", command).Msg("Unknown command")
	}
}

func runStats(ctx context.Context, db *gorm.DB, testID uint) {
	courseRepo := repository.NewCourseRepository(db)
	stats := service.NewStatisticsService(
		repository.NewTestRepository(db),
		repository.NewResultRepository(db),
		courseRepo,
		service.NewAccessPolicy(courseRepo),
		service.NewNoopStatsCache(),
	)
	result, err := stats.Compute(ctx, testID)
	if err != nil {
		log.Fatal().Err(err).Uint("testID", testID).Msg("Failed to compute statistics")
	}
	printJSON(result)
}

func runPending(ctx context.Context, db *gorm.DB, testID uint) {
	pending, err := repository.NewResultAnswerRepository(db).FindPendingEssaysByTest(ctx, testID)
	if err != nil {
		log.Fatal().Err(err).Uint("testID", testID).Msg("Failed to list pending essays")
	}
	for _, p := range pending {
		fmt.Printf("answer=%d result=%d user=%d question=%d submitted=%s\n",
			p.ID, p.ResultID, p.UserID, p.QuestionID, p.SubmittedAt.Format(time.RFC3339))
	}
	log.Info().Int("count", len(pending)).Uint("testID", testID).Msg("Pending essay answers")
}

func printJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Fatal().Err(err).Msg("Failed to encode output")
	}
}
