package api

import (
	"fmt"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/attendly/seminar-api/docs"
	v1 "github.com/attendly/seminar-api/internal/api/handler/v1"
	"github.com/attendly/seminar-api/internal/api/middleware"
	"github.com/attendly/seminar-api/internal/config"
	"github.com/attendly/seminar-api/internal/pkg/upload"
	"github.com/attendly/seminar-api/internal/repository"
	"github.com/attendly/seminar-api/internal/repository/dao"
	"github.com/attendly/seminar-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) (*Server, error) {
	if err := dao.InitTables(db); err != nil {
		return nil, fmt.Errorf("dao.InitTables -> %w", err)
	}

	uploader, err := upload.NewFromConfig(conf.Upload)
	if err != nil {
		return nil, fmt.Errorf("upload.NewFromConfig -> %w", err)
	}

	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()
	engine.MaxMultipartMemory = conf.API.MaxUploadMB << 20

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	seminarHandler := s.initSeminarHandler(db)
	talkHandler := s.initTalkHandler(db, uploader)
	memberHandler := s.initMemberHandler(db)
	attendanceHandler := s.initAttendanceHandler(db)
	s.MountHandlers(seminarHandler, talkHandler, memberHandler, attendanceHandler)

	return s, nil
}

func (s *Server) initSeminarHandler(db *gorm.DB) *v1.SeminarHandler {
	repo := repository.NewSeminarRepository(dao.NewSeminarDAO(db))
	memberRepo := repository.NewMemberRepository(dao.NewMemberDAO(db))
	attendanceRepo := repository.NewAttendanceRepository(dao.NewAttendanceDAO(db))
	svc := service.NewSeminarService(repo, memberRepo, attendanceRepo)
	handler := v1.NewSeminarHandler(svc)

	return handler
}

func (s *Server) initTalkHandler(db *gorm.DB, uploader upload.Uploader) *v1.TalkHandler {
	repo := repository.NewTalkRepository(dao.NewTalkDAO(db), dao.NewCommentDAO(db))
	svc := service.NewTalkService(repo, uploader)
	handler := v1.NewTalkHandler(svc)

	return handler
}

func (s *Server) initMemberHandler(db *gorm.DB) *v1.MemberHandler {
	repo := repository.NewMemberRepository(dao.NewMemberDAO(db))
	svc := service.NewMemberService(repo)
	handler := v1.NewMemberHandler(svc)

	return handler
}

func (s *Server) initAttendanceHandler(db *gorm.DB) *v1.AttendanceHandler {
	repo := repository.NewAttendanceRepository(dao.NewAttendanceDAO(db))
	seminarRepo := repository.NewSeminarRepository(dao.NewSeminarDAO(db))
	memberRepo := repository.NewMemberRepository(dao.NewMemberDAO(db))
	svc := service.NewAttendanceService(repo, seminarRepo, memberRepo)
	handler := v1.NewAttendanceHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(seminarHandler *v1.SeminarHandler, talkHandler *v1.TalkHandler, memberHandler *v1.MemberHandler, attendanceHandler *v1.AttendanceHandler) {
	const basePath = "/api"

	public := s.Router.Group(basePath)
	{
		public.GET("/seminars", seminarHandler.HandleListSeminars)
		public.GET("/seminars/:seminarID", seminarHandler.HandleGetSeminar)
		public.GET("/seminars/:seminarID/register", seminarHandler.HandleGetRegisteredMembers)

		public.GET("/talks/:talkID", talkHandler.HandleGetTalk)
		public.GET("/talks/:talkID/comments", talkHandler.HandleListComments)
		public.POST("/talks/:talkID/comments", talkHandler.HandleCreateComment)

		public.GET("/members", memberHandler.HandleListMembers)

		public.GET("/attendance", attendanceHandler.HandleListAttendance)
		public.POST("/attendance/sign-in", attendanceHandler.HandleSignIn)
	}

	admin := s.Router.Group(basePath, middleware.RequireAdmin(s.Config.API.AdminToken))
	{
		admin.POST("/seminars", seminarHandler.HandleCreateSeminar)
		admin.PATCH("/seminars/:seminarID", seminarHandler.HandleUpdateSeminar)
		admin.POST("/seminars/:seminarID/register", seminarHandler.HandleRegisterMember)

		admin.POST("/talks", talkHandler.HandleCreateTalk)
		admin.PATCH("/talks/:talkID", talkHandler.HandleUpdateTalk)

		admin.POST("/members", memberHandler.HandleCreateMember)
		admin.POST("/members/import", memberHandler.HandleImportMembers)

		admin.GET("/attendance/export", attendanceHandler.HandleExportAttendance)
	}

	s.Router.GET("/health", v1.HandleHealthcheck)

	// Locally stored presentations are served straight off disk.
	if s.Config.Upload.Backend == "local" {
		s.Router.Static("/uploads", s.Config.Upload.LocalDir)
	}

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Seminar Attendance API"
	docs.SwaggerInfo.Description = "CRUD API for seminars, talks, members and attendance tracking."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
