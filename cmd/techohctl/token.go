package main

import (
	"fmt"
	"time"

	"github.com/go-extras/cobraflags"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"tech-oh/internal/auth"
	"tech-oh/internal/config"
	"tech-oh/internal/domain"
)

const (
	subjectFlag = "sub"
	emailFlag   = "email"
	ttlFlag     = "ttl"
)

func newTokenCommand() *cobra.Command {
	flags := map[string]cobraflags.Flag{
		subjectFlag: &cobraflags.StringFlag{
			Name:  subjectFlag,
			Value: "",
			Usage: "User id to issue the token for (random when empty)",
		},
		emailFlag: &cobraflags.StringFlag{
			Name:  emailFlag,
			Value: "dev@tech-oh.local",
			Usage: "Email claim of the token",
		},
		ttlFlag: &cobraflags.StringFlag{
			Name:  ttlFlag,
			Value: "1h",
			Usage: "Token lifetime",
		},
	}

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a signed development token accepted by the API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			subject := flags[subjectFlag].GetString()
			if subject == "" {
				subject = uuid.New().String()
			}
			if _, err := uuid.Parse(subject); err != nil {
				return fmt.Errorf("--%s must be a uuid: %w", subjectFlag, err)
			}

			ttl, err := time.ParseDuration(flags[ttlFlag].GetString())
			if err != nil || ttl <= 0 {
				return fmt.Errorf("--%s must be a positive duration", ttlFlag)
			}

			verifier := auth.NewVerifier(cfg.JWTSecret, cfg.JWTAudience)
			token, err := verifier.Issue(domain.Identity{ID: subject, Email: flags[emailFlag].GetString()}, ttl)
			if err != nil {
				return err
			}

			cmd.Println(token)
			return nil
		},
	}
	cobraflags.RegisterMap(cmd, flags)
	return cmd
}
