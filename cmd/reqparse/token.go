package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/artem13815/staffing/pkg/config"
	"github.com/artem13815/staffing/pkg/security/jwt"
)

// newTokenCmd выпускает токен для локальной отладки API тем же секретом, что и сервер.
func newTokenCmd() *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Выпустить dev-токен (JWT_SECRET, JWT_ISSUER из окружения)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			owner := uuid.New()
			if subject != "" {
				var err error
				if owner, err = uuid.Parse(subject); err != nil {
					return fmt.Errorf("subject: %w", err)
				}
			}
			cfg := config.Load()
			token, err := jwt.NewGenerator(cfg.JWTSecret, cfg.JWTIssuer, ttl).Generate(owner)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}
	cmd.Flags().StringVar(&subject, "sub", "", "UUID владельца заявок (по умолчанию случайный)")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "время жизни токена")
	return cmd
}
