package router

import (
	"github.com/devoverflow/backend/internal/application"
	"github.com/devoverflow/backend/internal/container"
	pginfra "github.com/devoverflow/backend/internal/infrastructure/postgres"
	handlers "github.com/devoverflow/backend/internal/interface/http"
	"github.com/devoverflow/backend/internal/router/modules"
)

// InitModules constructs every feature module from the container singletons
// and registers it with the router registry. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	jwt := container.GetJWT()
	pool := container.GetPGPool()

	users := pginfra.NewUserRepository(pool)
	questions := pginfra.NewQuestionRepository(pool)
	answers := pginfra.NewAnswerRepository(pool)
	comments := pginfra.NewCommentRepository(pool)

	authSvc := application.NewAuthService(users, jwt, container.GetMailSender(), logger, cfg)
	questionSvc := application.NewQuestionService(questions, container.GetRedis(), logger, container.GetES(), cfg.ESQuestionsIndex)
	answerSvc := application.NewAnswerService(answers, questions, logger)
	commentSvc := application.NewCommentService(comments, questions, answers, logger)
	adminSvc := application.NewAdminService(users, questions, answers, logger)
	uploadSvc := application.NewUploadService(users, container.GetGCS(), cfg.GCSBucket, cfg.MaxFileSize, cfg.AllowedMIMETypes(), logger)
	aiSvc := application.NewAIService(users, logger, cfg.AIEnabled, cfg.GeminiAPIKey)

	authH := handlers.NewAuthHandler(authSvc, logger)
	questionH := handlers.NewQuestionHandler(questionSvc, logger)
	answerH := handlers.NewAnswerHandler(answerSvc, logger)
	commentH := handlers.NewCommentHandler(commentSvc, logger)
	adminH := handlers.NewAdminHandler(adminSvc, logger)
	userH := handlers.NewUserHandler(authSvc, logger)
	uploadH := handlers.NewUploadHandler(uploadSvc, logger)
	aiH := handlers.NewAIHandler(aiSvc, logger)

	r.Add(modules.NewAuthModule(authH, users, jwt))
	r.Add(modules.NewQuestionModule(questionH, answerH, commentH, users, jwt))
	r.Add(modules.NewAnswerModule(answerH, commentH, users, jwt))
	r.Add(modules.NewCommentModule(commentH, users, jwt))
	r.Add(modules.NewUserModule(userH, uploadH, aiH, users, jwt))
	r.Add(modules.NewAdminModule(adminH, users, jwt))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
