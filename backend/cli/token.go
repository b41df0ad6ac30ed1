package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"quizbank/backend/config"
	"quizbank/backend/utils"
)

func newTokenCmd() *cobra.Command {
	var (
		user  string
		admin bool
		ttl   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for local testing",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			identity := utils.Identity{UserID: user}
			if admin {
				identity.Role = utils.RoleAdmin
			}
			token, err := utils.GenerateJWTToken(identity, cfg.JWTSecret, ttl)
			if err != nil {
				return fmt.Errorf("sign token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&user, "user", "", "User id placed in the sub claim")
	cmd.Flags().BoolVar(&admin, "admin", false, "Grant the admin role")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "Token lifetime")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
