package handler

import (
	"github.com/gofiber/fiber/v2"

	"craftly/internal/service"
)

// AppInfo is the static application metadata shown by the admin UI.
type AppInfo struct {
	Name    string
	Logo    string
	Version string
}

// Services bundles the use cases the admin API depends on.
type Services struct {
	Pages   service.PageService
	Locales service.LocaleService
	Media   service.MediaService
	Site    service.SiteService
}

// RegisterRoutes attaches the admin API to r, which is normally a group
// mounted under the API prefix.
func RegisterRoutes(r fiber.Router, info AppInfo, svc Services) {
	r.Get("/", Index())

	r.Get("/app/config", GetConfig(info, svc.Locales))
	r.Get("/app/info", GetApp(info, svc.Locales, svc.Site))
	r.Get("/app/models", ListModels())
	r.Get("/app/media", GetMedia(svc.Media))

	r.Get("/app/pages", ListPages(svc.Pages))
	r.Get("/app/pages/:page", GetPage(svc.Pages))
	r.Post("/app/pages/:page", CreatePage(svc.Pages))
	r.Put("/app/pages/:page", UpdatePage(svc.Pages))

	r.Get("/app/langs", ListLangs(svc.Locales))
	r.Get("/app/langs/:lang", GetLang(svc.Locales))
	r.Post("/app/langs/:lang", CreateLang(svc.Locales))
	r.Put("/app/langs/:lang", UpdateLang(svc.Locales))
}
