package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/s0up4200/telegraph/content"
	"github.com/s0up4200/telegraph/filter"
	"github.com/s0up4200/telegraph/telegraph"
)

var (
	pageTitle      string
	contentJSON    string
	contentFile    string
	htmlFile       string
	returnContent  bool
	renderMarkdown bool
	renderHTML     bool

	listOffset  int
	listLimit   int
	filterExpr  string
	preset      string
	concurrency int

	viewsYear  int
	viewsMonth int
	viewsDay   int
	viewsHour  int
)

// pageCmd groups the page operations
var pageCmd = &cobra.Command{
	Use:   "page",
	Short: "Create, edit and inspect pages",
}

var pageCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new page",
	Long: `Create a new page. The body is given as a JSON node array (--content or
--content-file) or converted from HTML (--html-file). Use "-" to read a file
from stdin.`,
	Args: cobra.NoArgs,
	RunE: runPageCreate,
}

var pageEditCmd = &cobra.Command{
	Use:   "edit <path>",
	Short: "Replace the title and body of an existing page",
	Args:  cobra.ExactArgs(1),
	RunE:  runPageEdit,
}

var pageGetCmd = &cobra.Command{
	Use:   "get <path>",
	Short: "Show a page",
	Args:  cobra.ExactArgs(1),
	RunE:  runPageGet,
}

var pageListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the pages of the account",
	Long: `List the pages of the account, most recent first. Pages can be narrowed with
an expression (--filter) or a named filter from the config (--preset), e.g.

  telegraph page list --filter 'Views > 100 and hasPrefix(Title, "release")'`,
	Args: cobra.NoArgs,
	RunE: runPageList,
}

var pageViewsCmd = &cobra.Command{
	Use:   "views <path>...",
	Short: "Show view counts",
	Long: `Show the view count of one or more pages. With a single path the count can be
narrowed to a year, month, day or hour.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPageViews,
}

func init() {
	for _, c := range []*cobra.Command{pageCreateCmd, pageEditCmd} {
		c.Flags().StringVarP(&pageTitle, "title", "t", "", "page title (1-256 characters)")
		c.Flags().StringVar(&contentJSON, "content", "", "page body as a JSON array of nodes")
		c.Flags().StringVar(&contentFile, "content-file", "", "file containing the JSON node array")
		c.Flags().StringVar(&htmlFile, "html-file", "", "HTML file converted to page content")
		c.Flags().StringVar(&authorName, "author-name", "", "author name shown below the title")
		c.Flags().StringVar(&authorURL, "author-url", "", "profile link opened when the author name is clicked")
		c.Flags().BoolVar(&returnContent, "return-content", false, "include the page body in the result")

		_ = c.MarkFlagRequired("title")
		c.MarkFlagsMutuallyExclusive("content", "content-file", "html-file")
		c.MarkFlagsOneRequired("content", "content-file", "html-file")
	}

	pageGetCmd.Flags().BoolVar(&returnContent, "content", false, "include the page body")
	pageGetCmd.Flags().BoolVar(&renderMarkdown, "markdown", false, "print the page body as Markdown")
	pageGetCmd.Flags().BoolVar(&renderHTML, "html", false, "print the page body as HTML")
	pageGetCmd.MarkFlagsMutuallyExclusive("markdown", "html")

	pageListCmd.Flags().IntVar(&listOffset, "offset", 0, "sequential number of the first page")
	pageListCmd.Flags().IntVar(&listLimit, "limit", telegraph.DefaultPageListLimit, "number of pages to fetch (0-200)")
	pageListCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	pageListCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a named filter from config")
	pageListCmd.MarkFlagsMutuallyExclusive("filter", "preset")

	pageViewsCmd.Flags().IntVar(&viewsYear, "year", 0, "year (2000-2100)")
	pageViewsCmd.Flags().IntVar(&viewsMonth, "month", 0, "month (1-12), requires --year")
	pageViewsCmd.Flags().IntVar(&viewsDay, "day", 0, "day (1-31), requires --month")
	pageViewsCmd.Flags().IntVar(&viewsHour, "hour", 0, "hour (0-24), requires --day")
	pageViewsCmd.Flags().IntVar(&concurrency, "concurrency", telegraph.DefaultBatchSize, "parallel requests for multiple paths")

	pageCmd.AddCommand(pageCreateCmd, pageEditCmd, pageGetCmd, pageListCmd, pageViewsCmd)
}

func runPageCreate(cmd *cobra.Command, args []string) error {
	token, err := accessToken()
	if err != nil {
		return err
	}
	nodes, err := readContent()
	if err != nil {
		return err
	}

	req := client.CreatePage().
		AccessToken(token).
		Title(pageTitle).
		Content(nodes).
		AuthorName(stringFlag(cmd, "author-name", authorName, cfg.Account.AuthorName)).
		AuthorURL(stringFlag(cmd, "author-url", authorURL, cfg.Account.AuthorURL)).
		ReturnContent(returnContent)

	logger.Info().Str("title", pageTitle).Int("nodes", len(nodes)).Msg("Creating page")
	return send(cmd, req)
}

func runPageEdit(cmd *cobra.Command, args []string) error {
	token, err := accessToken()
	if err != nil {
		return err
	}
	nodes, err := readContent()
	if err != nil {
		return err
	}

	req := client.EditPage().
		AccessToken(token).
		Path(args[0]).
		Title(pageTitle).
		Content(nodes).
		ReturnContent(returnContent)
	if cmd.Flags().Changed("author-name") {
		req = req.AuthorName(authorName)
	}
	if cmd.Flags().Changed("author-url") {
		req = req.AuthorURL(authorURL)
	}

	logger.Info().Str("path", args[0]).Msg("Editing page")
	return send(cmd, req)
}

func runPageGet(cmd *cobra.Command, args []string) error {
	rendered := renderMarkdown || renderHTML
	page, err := run(cmd, client.GetPage().Path(args[0]).ReturnContent(returnContent || rendered))
	if err != nil || page == nil {
		return err
	}
	if !rendered {
		return printOutput(cmd.OutOrStdout(), page)
	}

	var body string
	if renderMarkdown {
		body, err = content.Markdown(page.Content)
	} else {
		body, err = content.HTML(page.Content)
	}
	if err != nil {
		return fmt.Errorf("failed to render page %s: %w", page.Path, err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), body)
	return err
}

func runPageList(cmd *cobra.Command, args []string) error {
	token, err := accessToken()
	if err != nil {
		return err
	}

	expression, err := getFilterExpression()
	if err != nil {
		return err
	}
	var f *filter.Filter
	if expression != "" {
		f, err = filter.Compile(expression)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
	}

	list, err := run(cmd, client.GetPageList().AccessToken(token).Offset(listOffset).Limit(listLimit))
	if err != nil || list == nil {
		return err
	}

	if f != nil {
		list.Pages, err = f.Apply(list.Pages)
		if err != nil {
			return err
		}
		logger.Debug().
			Str("filter", expression).
			Int("matched", len(list.Pages)).
			Int("total", list.TotalCount).
			Msg("Filtered pages")
	}
	return printOutput(cmd.OutOrStdout(), list)
}

func runPageViews(cmd *cobra.Command, args []string) error {
	dated := viewsYear != 0 || viewsMonth != 0 || viewsDay != 0 || cmd.Flags().Changed("hour")

	if len(args) == 1 {
		req := client.GetViews().Path(args[0])
		if viewsYear != 0 {
			req = req.Year(viewsYear)
		}
		if viewsMonth != 0 {
			req = req.Month(viewsMonth)
		}
		if viewsDay != 0 {
			req = req.Day(viewsDay)
		}
		if cmd.Flags().Changed("hour") {
			req = req.Hour(viewsHour)
		}
		return send(cmd, req)
	}

	if dated {
		return errors.New("--year, --month, --day and --hour need a single path")
	}
	if dryRun {
		for _, path := range args {
			if _, err := run(cmd, client.GetViews().Path(path)); err != nil {
				return err
			}
		}
		return nil
	}

	views, err := client.Views(cmd.Context(), args, concurrency)
	if err != nil {
		return err
	}
	return printOutput(cmd.OutOrStdout(), views)
}

// getFilterExpression determines the filter expression to use
func getFilterExpression() (string, error) {
	if filterExpr != "" {
		return filterExpr, nil
	}

	if preset != "" {
		if expression, ok := cfg.Filters[preset]; ok {
			return expression, nil
		}
		return "", fmt.Errorf("preset '%s' not found in config", preset)
	}

	return "", nil
}

// readContent loads the page body from whichever content flag was given
func readContent() ([]content.Node, error) {
	switch {
	case htmlFile != "":
		data, err := readInput(htmlFile)
		if err != nil {
			return nil, err
		}
		nodes, err := content.FromHTMLString(string(data))
		if err != nil {
			return nil, fmt.Errorf("failed to convert %s: %w", htmlFile, err)
		}
		return nodes, nil
	case contentFile != "":
		data, err := readInput(contentFile)
		if err != nil {
			return nil, err
		}
		return parseContent(string(data))
	default:
		return parseContent(contentJSON)
	}
}

func parseContent(s string) ([]content.Node, error) {
	nodes, err := content.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("invalid page content: %w", err)
	}
	return nodes, nil
}

// readInput reads a file, or stdin for "-"
func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}
