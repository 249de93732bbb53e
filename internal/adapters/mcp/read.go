package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"hmiq/internal/application"
	"hmiq/internal/application/commands"
	"hmiq/internal/domain"
	"hmiq/internal/ports"
)

// RegisterReadTools adds all catalog tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, repo ports.CatalogRepository) {
	s.AddTool(listTool(), listHandler(repo))
	s.AddTool(getTool(), getHandler(repo))
	s.AddTool(scalesTool(), scalesHandler(repo))
	s.AddTool(languagesTool(), languagesHandler(repo))
}

// --- list_questionnaires ---

func listTool() mcp.Tool {
	return mcp.NewTool("list_questionnaires",
		mcp.WithDescription("List UX questionnaires matching all given filters. Omitted filters match everything."),
		mcp.WithString("search",
			mcp.Description("Case-insensitive substring of the questionnaire name"),
		),
		mcp.WithString("scales",
			mcp.Description("Comma separated exact scale names (e.g. Hedonic,Pragmatic). Matches questionnaires measuring any of them."),
		),
		mcp.WithString("time",
			mcp.Description("Administration time"),
			mcp.Enum("PreStudy", "PostStudy", "Standalone"),
		),
		mcp.WithString("language",
			mcp.Description("Language code the questionnaire is available in (e.g. DE)"),
		),
	)
}

func listHandler(repo ports.CatalogRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		criteria, err := application.ParseCriteria(
			req.GetString("search", ""),
			application.SplitList(req.GetString("scales", "")),
			req.GetString("time", ""),
			req.GetString("language", ""),
		)
		if err != nil {
			return toolError(err)
		}

		results, err := commands.NewListCommand(repo, criteria).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(results, formatQuestionnaire)
	}
}

// --- get_questionnaire ---

func getTool() mcp.Tool {
	return mcp.NewTool("get_questionnaire",
		mcp.WithDescription("Show one questionnaire with metadata, links and Cronbach's alpha per scale for a language."),
		mcp.WithString("short",
			mcp.Description("Questionnaire abbreviation (e.g. UEQ-S)"),
			mcp.Required(),
		),
		mcp.WithString("language",
			mcp.Description("Language of the reliability figures. Defaults to the first available language."),
		),
	)
}

func getHandler(repo ports.CatalogRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		short := req.GetString("short", "")
		if short == "" {
			return toolError(fmt.Errorf("short is required"))
		}

		res, err := commands.NewShowCommand(repo, short, req.GetString("language", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(formatDetail(res.Questionnaire, res.Detail)), nil
	}
}

// --- list_scales ---

func scalesTool() mcp.Tool {
	return mcp.NewTool("list_scales",
		mcp.WithDescription("List the scale names that can be used with list_questionnaires."),
		mcp.WithString("filter",
			mcp.Description("Case-insensitive substring of the scale name"),
		),
	)
}

func scalesHandler(repo ports.CatalogRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		scales, err := commands.NewScaleFacetCommand(repo, req.GetString("filter", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(scales, func(s string) string { return s })
	}
}

// --- list_languages ---

func languagesTool() mcp.Tool {
	return mcp.NewTool("list_languages",
		mcp.WithDescription("List language codes used in the catalog with their English names."),
		mcp.WithString("filter",
			mcp.Description("Case-insensitive substring of the language name (e.g. germ)"),
		),
	)
}

func languagesHandler(repo ports.CatalogRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		opts, err := commands.NewLanguageFacetCommand(repo, req.GetString("filter", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(opts, func(o domain.LanguageOption) string {
			return fmt.Sprintf("%s  %s", o.Code, o.Name)
		})
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}
