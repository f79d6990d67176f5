package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/orwel/orwel-cli/internal/client/models"
)

// News renders a news feed. With no arguments it shows the personalized feed
// when logged in online and the general feed otherwise; "news country <code>",
// "news region <name>" and "news search <query>" narrow the scope.
func (a *App) News(ctx context.Context, args []string) error {
	var articles []models.NewsArticle
	switch {
	case len(args) >= 2 && args[0] == "country":
		articles = a.news.ByCountry(ctx, args[1])
	case len(args) >= 2 && args[0] == "region":
		articles = a.news.ByRegion(ctx, strings.Join(args[1:], " "))
	case len(args) >= 2 && args[0] == "search":
		articles = a.news.Search(ctx, strings.Join(args[1:], " "), "", "")
	case len(args) > 0:
		printlnFn("Usage: news [country <code> | region <name> | search <query>]")
		return nil
	case a.isLoggedIn() && !a.auth.Session().Offline():
		articles = a.news.Personalized(ctx)
	default:
		articles = a.news.General(ctx)
	}

	if len(articles) == 0 {
		printlnFn("No news available")
		return nil
	}
	for _, art := range articles {
		line := " - " + art.Title
		if art.Source != "" {
			line += " [" + art.Source + "]"
		}
		if !art.PublishedAt.IsZero() {
			line += " (" + art.PublishedAt.Format("2006-01-02") + ")"
		}
		printlnFn(line)
	}
	return nil
}

// Countries lists every tracked jurisdiction.
func (a *App) Countries(ctx context.Context) error {
	countries := a.countries.All(ctx)
	if len(countries) == 0 {
		printlnFn("No countries available")
		return nil
	}
	for _, c := range countries {
		printlnFn(fmt.Sprintf(" - %s %s", c.Code, c.Name))
	}
	return nil
}

// Country shows one jurisdiction with its policies, stances and warnings.
func (a *App) Country(ctx context.Context, code string) error {
	country, err := a.countries.ByCode(ctx, code)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}

	printlnFn(country.Name, "("+country.Code+")")
	if country.Summary != "" {
		printlnFn(country.Summary)
	}
	for _, p := range country.Policies {
		printlnFn(" policy:", p.Title, "["+p.Status+"]")
	}
	for _, s := range country.Stances {
		printlnFn(" stance:", s.Topic, "-", s.Position)
	}
	for _, w := range a.countries.Warnings(ctx, code) {
		printlnFn(" warning:", w.Title, "["+w.Severity+"]")
	}
	return nil
}
