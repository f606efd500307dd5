package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/bethub/admincli/internal/client/resources"
)

// listTransactions accepts optional positional filters: [kind] [status].
func (a *App) listTransactions(ctx context.Context, args []string) error {
	filter := resources.TxFilter{}
	if len(args) > 0 {
		filter.Kind = args[0]
	}
	if len(args) > 1 {
		filter.Status = args[1]
	}

	txns, err := a.txns.List(ctx, filter)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	for _, tx := range txns {
		fmt.Fprintf(a.out, "%-12s user=%-12s %-8s %-10s %s\n",
			tx.ID, tx.UserID, tx.Kind, tx.Status, tx.Amount.StringFixed(2))
	}
	return nil
}

func (a *App) approveTransaction(ctx context.Context, id string) error {
	if id == "" {
		fmt.Fprintln(a.out, "Usage: approve <transaction-id>")
		return nil
	}
	if err := a.txns.Approve(ctx, id); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	fmt.Fprintf(a.out, "Transaction %s approved\n", id)
	return nil
}

func (a *App) rejectTransaction(ctx context.Context, id string, reasonParts []string) error {
	if id == "" {
		fmt.Fprintln(a.out, "Usage: reject <transaction-id> [reason]")
		return nil
	}
	reason := strings.Join(reasonParts, " ")
	if err := a.txns.Reject(ctx, id, reason); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	fmt.Fprintf(a.out, "Transaction %s rejected\n", id)
	return nil
}
