package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	adminauth "github.com/folio-labs/portfolio-backend/internal/admin/auth"
	adminhttp "github.com/folio-labs/portfolio-backend/internal/admin/http"
	adminservice "github.com/folio-labs/portfolio-backend/internal/admin/service"
	httpapi "github.com/folio-labs/portfolio-backend/internal/api/http"
	"github.com/folio-labs/portfolio-backend/internal/api/http/middleware"
	"github.com/folio-labs/portfolio-backend/internal/api/http/routes"
	bloghttp "github.com/folio-labs/portfolio-backend/internal/blogs/http"
	blogrepo "github.com/folio-labs/portfolio-backend/internal/blogs/repository"
	blogservice "github.com/folio-labs/portfolio-backend/internal/blogs/service"
	casehttp "github.com/folio-labs/portfolio-backend/internal/casestudies/http"
	caserepo "github.com/folio-labs/portfolio-backend/internal/casestudies/repository"
	caseservice "github.com/folio-labs/portfolio-backend/internal/casestudies/service"
	contacthttp "github.com/folio-labs/portfolio-backend/internal/contacts/http"
	contactrepo "github.com/folio-labs/portfolio-backend/internal/contacts/repository"
	contactservice "github.com/folio-labs/portfolio-backend/internal/contacts/service"
	demohttp "github.com/folio-labs/portfolio-backend/internal/demos/http"
	demorepo "github.com/folio-labs/portfolio-backend/internal/demos/repository"
	demoservice "github.com/folio-labs/portfolio-backend/internal/demos/service"
	"github.com/folio-labs/portfolio-backend/internal/notify"
	pricinghttp "github.com/folio-labs/portfolio-backend/internal/pricing/http"
	pricingrepo "github.com/folio-labs/portfolio-backend/internal/pricing/repository"
	pricingservice "github.com/folio-labs/portfolio-backend/internal/pricing/service"
	projecthttp "github.com/folio-labs/portfolio-backend/internal/projects/http"
	projectrepo "github.com/folio-labs/portfolio-backend/internal/projects/repository"
	projectservice "github.com/folio-labs/portfolio-backend/internal/projects/service"
	"github.com/folio-labs/portfolio-backend/internal/ratelimit"
	settingshttp "github.com/folio-labs/portfolio-backend/internal/settings/http"
	settingsrepo "github.com/folio-labs/portfolio-backend/internal/settings/repository"
	settingsservice "github.com/folio-labs/portfolio-backend/internal/settings/service"
	techhttp "github.com/folio-labs/portfolio-backend/internal/techstack/http"
	techrepo "github.com/folio-labs/portfolio-backend/internal/techstack/repository"
	techservice "github.com/folio-labs/portfolio-backend/internal/techstack/service"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	Production  bool
	CORSOrigins []string

	// TrustedProxies may set X-Forwarded-For. Empty means the socket
	// address is the client IP.
	TrustedProxies []string

	// DB backs the health check only. SQL nil puts /api in degraded mode.
	DB    *pgxpool.Pool
	SQL   *sqlx.DB
	Redis *redis.Client

	Mailer   notify.Mailer
	Runner   *notify.Detached
	Analyzer demoservice.Analyzer

	Verifier adminauth.Verifier
	Issuer   *adminauth.Issuer

	RateLimit        int
	RateWindow       time.Duration
	LoginRateLimit   int
	LoginRateWindow  time.Duration
	MaxDocumentBytes int64
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	if err := r.SetTrustedProxies(dep.TrustedProxies); err != nil {
		zap.L().Error("invalid trusted proxies, trusting none", zap.Strings("proxies", dep.TrustedProxies), zap.Error(err))
		_ = r.SetTrustedProxies(nil)
	}
	r.Use(middleware.Recovery(), middleware.RequestIDMiddleware())

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-Id"},
		ExposeHeaders:    []string{"X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(dep.CORSOrigins) > 0 {
		corsCfg.AllowOrigins = dep.CORSOrigins
	} else {
		// No allow-list configured: reflect the caller's origin.
		corsCfg.AllowOriginFunc = func(string) bool { return true }
	}
	r.Use(cors.New(corsCfg))

	var pinger httpapi.Pinger
	if dep.DB != nil {
		pinger = dep.DB
	}
	httpapi.NewHealthHandler(dep.ServiceName, dep.Version, pinger).RegisterRoutes(r)
	r.NoRoute(middleware.NotFound())

	if dep.SQL == nil {
		r.Any("/api", middleware.Unavailable())
		r.Group("/api").Any("/*path", middleware.Unavailable())
		return r
	}

	settingsSvc := settingsservice.NewSettingsService(settingsrepo.NewSettingsRepository(dep.SQL))
	projectSvc := projectservice.NewProjectService(projectrepo.NewProjectRepository(dep.SQL))
	techSvc := techservice.NewTechStackService(techrepo.NewTechStackRepository(dep.SQL))
	blogSvc := blogservice.NewBlogService(blogrepo.NewBlogRepository(dep.SQL))
	caseSvc := caseservice.NewCaseStudyService(caserepo.NewCaseStudyRepository(dep.SQL))
	contactSvc := contactservice.NewContactService(contactrepo.NewContactRepository(dep.SQL), dep.Mailer, dep.Runner)
	demoSvc := demoservice.NewDemoService(demorepo.NewDemoResultRepository(dep.SQL), dep.Analyzer, dep.Runner)
	pricingSvc := pricingservice.NewPricingService(pricingrepo.NewQuoteRepository(dep.SQL))

	dash := adminservice.NewDashboardService(adminservice.Sources{
		Visitors: settingsSvc,
		Projects: projectSvc,
		Blogs:    blogSvc,
		Contacts: contactSvc,
		Demos:    demoSvc,
		Quotes:   pricingSvc,
	})

	routes.RegisterV1(r, routes.V1Deps{
		Settings:    settingshttp.New(settingsSvc),
		Projects:    projecthttp.New(projectSvc),
		TechStack:   techhttp.New(techSvc),
		Blogs:       bloghttp.New(blogSvc),
		CaseStudies: casehttp.New(caseSvc),
		Contacts:    contacthttp.New(contactSvc),
		Demos:       demohttp.New(demoSvc, dep.MaxDocumentBytes),
		Pricing:     pricinghttp.New(pricingSvc),
		Admin:       adminhttp.New(dep.Verifier, dep.Issuer, dash, dep.Production),

		Issuer: dep.Issuer,
		APILimit: ratelimit.Middleware(
			newLimiter(dep.Redis, "api", dep.RateLimit, dep.RateWindow),
			"too many requests, please try again later"),
		LoginLimit: ratelimit.Middleware(
			newLimiter(dep.Redis, "login", dep.LoginRateLimit, dep.LoginRateWindow),
			"too many login attempts, please try again later"),
	})

	return r
}

func newLimiter(client *redis.Client, prefix string, limit int, window time.Duration) ratelimit.Limiter {
	if client != nil {
		return ratelimit.NewRedisLimiter(client, prefix, limit, window)
	}
	return ratelimit.NewMemoryLimiter(limit, window)
}
