package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	totalStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func newAccountsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "Lista as contas de anúncios acessíveis",
		Args:  cobra.NoArgs,
		RunE: opts.withDeps(func(cmd *cobra.Command, args []string) error {
			if err := opts.restore(cmd.Context()); err != nil {
				return err
			}

			accounts, err := opts.deps.API.GetAdAccounts(cmd.Context())
			if err != nil {
				return fmt.Errorf("erro ao listar contas: %w", err)
			}

			out := cmd.OutOrStdout()
			if opts.asJSON {
				fmt.Fprintln(out, utils.PrettyJson(accounts))
				return nil
			}

			if len(accounts) == 0 {
				fmt.Fprintln(out, mutedStyle.Render("Nenhuma conta de anúncios encontrada"))
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNOME\tMOEDA")
			for _, account := range accounts {
				fmt.Fprintf(w, "%s\t%s\t%s\n", account.AccountID, account.DisplayName(), account.CurrencyOrDefault())
			}
			return w.Flush()
		}),
	}
}

func newCampaignsCommand(opts *rootOptions) *cobra.Command {
	var since, until string

	cmd := &cobra.Command{
		Use:   "campaigns <account>",
		Short: "Mostra as campanhas da conta agrupadas por objetivo",
		Args:  cobra.ExactArgs(1),
		RunE: opts.withDeps(func(cmd *cobra.Command, args []string) error {
			if err := opts.restore(cmd.Context()); err != nil {
				return err
			}

			campaigns, err := opts.deps.API.GetCampaigns(cmd.Context(), args[0], since, until)
			if err != nil {
				return fmt.Errorf("erro ao buscar campanhas: %w", err)
			}

			if opts.asJSON {
				fmt.Fprintln(cmd.OutOrStdout(), utils.PrettyJson(insighting.GroupByObjective(campaigns)))
				return nil
			}

			return printCampaigns(cmd.OutOrStdout(), campaigns)
		}),
	}

	cmd.Flags().StringVar(&since, "since", "", "início do período (AAAA-MM-DD)")
	cmd.Flags().StringVar(&until, "until", "", "fim do período (AAAA-MM-DD)")

	return cmd
}

func printCampaigns(out io.Writer, campaigns []*domain.Campaign) error {
	if len(campaigns) == 0 {
		fmt.Fprintln(out, mutedStyle.Render("Nenhuma campanha com entrega no período"))
		return nil
	}

	for _, group := range insighting.GroupByObjective(campaigns) {
		fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("%s (%d)", group.Objective, len(group.Campaigns))))

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "CAMPANHA\tSTATUS\tGASTO\tIMPRESSÕES\tCLIQUES\tCONVERSAS")
		for _, campaign := range group.Campaigns {
			fmt.Fprintf(w, "%s\t%s\t%s\n", campaignName(campaign), value(campaign.Status), metricColumns(campaign.Insights))
		}
		fmt.Fprintf(w, "Total\t\t%s\n", metricColumns(&group.AggregatedInsights))
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}

	totals := insighting.AccountTotals(campaigns)
	fmt.Fprintln(out, totalStyle.Render(fmt.Sprintf(
		"Total da conta: gasto %s, impressões %s, cliques %s, conversas %s",
		metric(totals.Spend), metric(totals.Impressions), metric(totals.Clicks), metric(totals.Conversations),
	)))

	return nil
}

func metricColumns(insights *domain.InsightsData) string {
	if insights == nil {
		return "-\t-\t-\t-"
	}
	return fmt.Sprintf("%s\t%s\t%s\t%s",
		metric(insights.Spend), metric(insights.Impressions), metric(insights.Clicks), metric(insights.Conversations))
}

func metric(raw *string) string {
	if raw == nil {
		return "-"
	}
	return utils.FormatGrouped(insighting.ParseMetric(raw))
}

func campaignName(c *domain.Campaign) string {
	if c.CampaignName != nil && *c.CampaignName != "" {
		return *c.CampaignName
	}
	return c.CampaignID
}

func value(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
