package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"scriptviral/internal/client"
	"scriptviral/internal/domain"
)

func main() {
	_ = godotenv.Load() // best-effort: load .env if present

	root := &cobra.Command{
		Use:          "scriptgen <product-link>",
		Short:        "Generate viral marketing scripts for a product link",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0])
		},
	}

	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	root.SilenceErrors = true

	root.Flags().String("server", envOr("SCRIPTGEN_SERVER", "http://localhost:8080"), "Generation service base URL")
	root.Flags().String("gaya", string(domain.StylePersuasif), "Language style")
	root.Flags().String("hook", string(domain.HookTidakAda), "Hook type")
	root.Flags().String("cta", string(domain.CTAMarketplace), "CTA type")
	root.Flags().Int("durasi", 30, "Target duration in seconds (0-60)")
	root.Flags().Int("opsi", 3, "Number of script options (1-15)")
	root.Flags().String("out", "", "Write the chosen option as a .docx to this path")
	root.Flags().Int("pilih", 1, "Option number used by --out")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, productLink string) error {
	server, _ := cmd.Flags().GetString("server")
	gaya, _ := cmd.Flags().GetString("gaya")
	hook, _ := cmd.Flags().GetString("hook")
	cta, _ := cmd.Flags().GetString("cta")
	durasi, _ := cmd.Flags().GetInt("durasi")
	opsi, _ := cmd.Flags().GetInt("opsi")
	out, _ := cmd.Flags().GetString("out")
	pilih, _ := cmd.Flags().GetInt("pilih")

	req := domain.GenerationRequest{
		ProductLink:   productLink,
		LanguageStyle: domain.LanguageStyle(gaya),
		HookType:      domain.HookType(hook),
		CTAType:       domain.CTAType(cta),
		ScriptLength:  durasi,
		OutputCount:   opsi,
	}

	form := client.NewForm(client.NewService(server, &http.Client{Timeout: 2 * time.Minute}))
	if err := form.Submit(cmd.Context(), req); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			for _, f := range verr.Fields {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", f.Field, f.Message)
			}
			return errors.New("permintaan tidak valid")
		}
		return err
	}

	result := form.Result()
	for i := range result.ScriptOptions {
		text, err := form.CopyOption(i)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "=== Opsi %d ===\n%s\n\n", i+1, text)
	}

	if out != "" {
		if err := form.ExportOption(pilih-1, out); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Dokumen tersimpan di %s\n", out)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
