package cmd

import (
	"github.com/spf13/cobra"

	"github.com/s0up4200/telegraph/telegraph"
)

var (
	shortName     string
	authorName    string
	authorURL     string
	accountFields []string
)

// accountCmd groups the account operations
var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Create and manage Telegraph accounts",
}

var accountCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new account",
	Long: `Create a new Telegraph account. The returned access_token is needed by every
other account and page command; store it in account.access_token.`,
	Args: cobra.NoArgs,
	RunE: runAccountCreate,
}

var accountEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Update account information",
	Long:  `Update the short name, author name or author URL of the account. Only the flags given are changed.`,
	Args:  cobra.NoArgs,
	RunE:  runAccountEdit,
}

var accountInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show account information",
	Args:  cobra.NoArgs,
	RunE:  runAccountInfo,
}

var accountRevokeCmd = &cobra.Command{
	Use:   "revoke",
	Short: "Revoke the access token and issue a new one",
	Args:  cobra.NoArgs,
	RunE:  runAccountRevoke,
}

func init() {
	for _, c := range []*cobra.Command{accountCreateCmd, accountEditCmd} {
		c.Flags().StringVar(&shortName, "short-name", "", "account name shown above the Edit/Publish button")
		c.Flags().StringVar(&authorName, "author-name", "", "default author name for new pages")
		c.Flags().StringVar(&authorURL, "author-url", "", "default profile link for new pages")
	}

	defaultFields := make([]string, len(telegraph.DefaultAccountFields))
	for i, f := range telegraph.DefaultAccountFields {
		defaultFields[i] = string(f)
	}
	accountInfoCmd.Flags().StringSliceVar(&accountFields, "fields", defaultFields,
		"fields to return: short_name, author_name, author_url, auth_url, page_count")

	accountCmd.AddCommand(accountCreateCmd, accountEditCmd, accountInfoCmd, accountRevokeCmd)
}

func runAccountCreate(cmd *cobra.Command, args []string) error {
	// Fall back to the configured account details
	name := stringFlag(cmd, "short-name", shortName, cfg.Account.ShortName)
	req := client.CreateAccount().
		ShortName(name).
		AuthorName(stringFlag(cmd, "author-name", authorName, cfg.Account.AuthorName)).
		AuthorURL(stringFlag(cmd, "author-url", authorURL, cfg.Account.AuthorURL))

	logger.Info().Str("short_name", name).Msg("Creating account")
	return send(cmd, req)
}

func runAccountEdit(cmd *cobra.Command, args []string) error {
	token, err := accessToken()
	if err != nil {
		return err
	}

	req := client.EditAccountInfo().AccessToken(token)
	if cmd.Flags().Changed("short-name") {
		req = req.ShortName(shortName)
	}
	if cmd.Flags().Changed("author-name") {
		req = req.AuthorName(authorName)
	}
	if cmd.Flags().Changed("author-url") {
		req = req.AuthorURL(authorURL)
	}
	return send(cmd, req)
}

func runAccountInfo(cmd *cobra.Command, args []string) error {
	token, err := accessToken()
	if err != nil {
		return err
	}

	fields := make([]telegraph.AccountField, len(accountFields))
	for i, f := range accountFields {
		fields[i] = telegraph.AccountField(f)
	}
	return send(cmd, client.GetAccountInfo().AccessToken(token).Fields(fields...))
}

func runAccountRevoke(cmd *cobra.Command, args []string) error {
	token, err := accessToken()
	if err != nil {
		return err
	}

	account, err := run(cmd, client.RevokeAccessToken().AccessToken(token))
	if err != nil || account == nil {
		return err
	}

	logger.Warn().Msg("Access token revoked; update account.access_token with the new token")
	return printOutput(cmd.OutOrStdout(), account)
}

// stringFlag returns the flag value when it was given, otherwise fallback
func stringFlag(cmd *cobra.Command, name, value, fallback string) string {
	if cmd.Flags().Changed(name) {
		return value
	}
	return fallback
}
