// Package commands wires the administrative workflows into standalone
// run-to-completion CLI commands. Each command signs in as administrator,
// runs one workflow against the store, prints a human-readable summary and
// exits non-zero on any unrecoverable failure.
package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	fsdb "github.com/shopbooks/chartops/internal/adapters/database/firestore"

	"github.com/shopbooks/chartops/internal/adapters/auth"
	"github.com/shopbooks/chartops/internal/catalog"
	"github.com/shopbooks/chartops/internal/core/domain"
	portssvc "github.com/shopbooks/chartops/internal/core/ports/services"
	"github.com/shopbooks/chartops/internal/core/services"
	"github.com/shopbooks/chartops/internal/platform/config"
	"github.com/shopbooks/chartops/internal/platform/logging"
)

// NewRootCommand builds the chartops command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "chartops",
		Short: "Chart-of-accounts administration for shop ledgers",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	root.AddCommand(
		newSeedCommand(),
		newResetCommand(),
		newClearSubsCommand(),
		newRenameCommand(),
		newWipeCommand(),
		newBackupCommand(),
		newFixDatesCommand(),
	)

	return root
}

// runtime carries everything a workflow run needs: configuration, the
// signed-in principal, and the wired services.
type runtime struct {
	ctx        context.Context
	cfg        *config.Config
	logger     *slog.Logger
	principal  *domain.Principal
	auth       portssvc.Authenticator
	reconciler portssvc.ReconcilerSvc
	wiper      portssvc.WipeSvc
	backup     portssvc.BackupSvc
	dateFixer  portssvc.DateFixSvc
	close      func()
}

// newRuntime loads configuration, signs in as administrator and wires the
// services. Configuration and authentication failures abort before any store
// mutation is possible.
func newRuntime(ctx context.Context) (*runtime, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	logger := logging.New(cfg.LogJSON)
	slog.SetDefault(logger)
	ctx = logging.WithLogger(ctx, logger)

	authenticator, err := auth.NewIdentityToolkitAuthenticator(ctx, cfg.IdentityAPIKey)
	if err != nil {
		return nil, err
	}

	principal, err := authenticator.SignIn(ctx, cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		return nil, err
	}
	logger.Info("Signed in as administrator", slog.String("email", principal.Email))

	client, err := fsdb.NewClient(ctx, cfg)
	if err != nil {
		return nil, err
	}

	shopRepo := fsdb.NewShopRepository(client)
	accountRepo := fsdb.NewAccountRepository(client)
	batchRepo := fsdb.NewBatchRepository(client)
	collectionRepo := fsdb.NewCollectionRepository(client)

	planner := services.NewPlanner(catalog.Default())
	executor := services.NewChunkedExecutor(batchRepo, cfg.ChunkSize, cfg.ChunkCommitTimeout)
	waiter := services.NewConsistencyWaiter(cfg.ConsistencyWait)
	verifier := services.NewVerifier(accountRepo)

	rt := &runtime{
		ctx:        ctx,
		cfg:        cfg,
		logger:     logger,
		principal:  principal,
		auth:       authenticator,
		reconciler: services.NewReconcileService(shopRepo, shopRepo, accountRepo, planner, executor, waiter, verifier),
		wiper:      services.NewWipeService(shopRepo, collectionRepo, executor, waiter),
		backup:     services.NewBackupService(collectionRepo),
		dateFixer:  services.NewDateFixService(collectionRepo, executor),
	}
	rt.close = func() {
		_ = authenticator.SignOut(ctx)
		_ = client.Close()
	}
	return rt, nil
}

func printRunSummary(summary *domain.RunSummary) {
	shop := summary.ShopID
	if shop == "" {
		shop = "all shops"
	}
	fmt.Printf("%s (%s): planned %d create(s), %d update(s), %d delete(s); committed %d operation(s)",
		shop, summary.Mode, summary.Creates, summary.Updates, summary.Deletes, summary.Execution.OpsCommitted)
	if summary.PreservedCount > 0 {
		fmt.Printf("; %d preserved", summary.PreservedCount)
	}
	if len(summary.Skipped) > 0 {
		fmt.Printf("; %d skipped", len(summary.Skipped))
	}
	fmt.Println()

	if summary.Verification != nil && !summary.Verification.Clean() {
		fmt.Printf("warning: %d account(s) expected deleted are still present: %v (likely consistency lag; re-verify after a longer wait)\n",
			len(summary.Verification.UnexpectedRemaining), summary.Verification.UnexpectedRemaining)
	}
	if summary.Failed() {
		fmt.Printf("error: stopped at chunk %d after committing %d operation(s): %v\n",
			summary.Execution.FailedChunk, summary.Execution.OpsCommitted, summary.Execution.Err)
	}
}
