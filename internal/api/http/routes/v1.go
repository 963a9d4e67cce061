package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/folio-labs/portfolio-backend/internal/admin/auth"
	adminhttp "github.com/folio-labs/portfolio-backend/internal/admin/http"
	bloghttp "github.com/folio-labs/portfolio-backend/internal/blogs/http"
	casehttp "github.com/folio-labs/portfolio-backend/internal/casestudies/http"
	contacthttp "github.com/folio-labs/portfolio-backend/internal/contacts/http"
	demohttp "github.com/folio-labs/portfolio-backend/internal/demos/http"
	pricinghttp "github.com/folio-labs/portfolio-backend/internal/pricing/http"
	projecthttp "github.com/folio-labs/portfolio-backend/internal/projects/http"
	settingshttp "github.com/folio-labs/portfolio-backend/internal/settings/http"
	techhttp "github.com/folio-labs/portfolio-backend/internal/techstack/http"
)

// V1Deps carries one handler per feature plus the guards shared by the API.
type V1Deps struct {
	Settings    *settingshttp.Handler
	Projects    *projecthttp.Handler
	TechStack   *techhttp.Handler
	Blogs       *bloghttp.Handler
	CaseStudies *casehttp.Handler
	Contacts    *contacthttp.Handler
	Demos       *demohttp.Handler
	Pricing     *pricinghttp.Handler
	Admin       *adminhttp.Handler

	Issuer     *auth.Issuer
	APILimit   gin.HandlerFunc
	LoginLimit gin.HandlerFunc
}

// RegisterV1 mounts the public API under /api and the admin API under
// /api/admin. Everything in the admin tree except login and logout requires a
// valid session.
func RegisterV1(r *gin.Engine, dep V1Deps) {
	api := r.Group("/api")
	if dep.APILimit != nil {
		api.Use(dep.APILimit)
	}

	dep.Settings.RegisterPublic(api.Group("/settings"))
	dep.Projects.RegisterPublic(api.Group("/projects"))
	dep.TechStack.RegisterPublic(api.Group("/techstack"))
	dep.Blogs.RegisterPublic(api.Group("/blogs"))
	dep.CaseStudies.RegisterPublic(api.Group("/case-studies"))
	dep.Contacts.RegisterPublic(api.Group("/contact"))
	dep.Demos.RegisterPublic(api.Group("/demo"))
	dep.Pricing.RegisterPublic(api.Group("/pricing"))

	admin := api.Group("/admin")
	loginGuard := dep.LoginLimit
	if loginGuard == nil {
		loginGuard = func(c *gin.Context) { c.Next() }
	}
	dep.Admin.RegisterSession(admin, loginGuard)

	gated := admin.Group("", auth.RequireAdmin(dep.Issuer))
	dep.Admin.RegisterGated(gated)
	dep.Settings.RegisterAdmin(gated.Group("/settings"))
	dep.Projects.RegisterAdmin(gated.Group("/projects"))
	dep.TechStack.RegisterAdmin(gated.Group("/techstack"))
	dep.Blogs.RegisterAdmin(gated.Group("/blogs"))
	dep.CaseStudies.RegisterAdmin(gated.Group("/case-studies"))
	dep.Contacts.RegisterAdmin(gated.Group("/contacts"))
	dep.Demos.RegisterAdmin(gated.Group("/demo-results"))
	dep.Pricing.RegisterAdmin(gated.Group("/pricing-quotes"))
}
