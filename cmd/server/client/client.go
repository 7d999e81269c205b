// Package client holds the "anyventure client" commands, one per RPC of the
// companion services
package client

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	apiv1alpha1 "github.com/anyventure/companion-api/internal/api/v1alpha1"
)

var (
	serverAddr string
	timeout    time.Duration
)

// ClientCmd groups the client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Call a running companion server",
	Long: `Each subcommand makes one gRPC call against a running companion server
and prints the result for a terminal.`,
}

func init() {
	flags := ClientCmd.PersistentFlags()
	flags.StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	flags.DurationVar(&timeout, "timeout", 30*time.Second, "Per-request timeout")

	ClientCmd.AddCommand(
		listSpellsCmd, listItemsCmd, listCreaturesCmd, getCreatureCmd,
		getCharacterCmd, learnSpellCmd, forgetSpellCmd, setExoticCmd,
		rollSkillCmd, rollLogCmd,
	)
}

// newClient dials serverAddr and builds a typed client over the connection.
// The returned func closes the connection.
func newClient[T any](build func(grpc.ClientConnInterface) T) (T, func(), error) {
	var zero T
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	)
	if err != nil {
		return zero, nil, fmt.Errorf("failed to connect to %s: %w", serverAddr, err)
	}

	return build(conn), func() { _ = conn.Close() }, nil
}

func createCatalogClient() (apiv1alpha1.CatalogServiceClient, func(), error) {
	return newClient(apiv1alpha1.NewCatalogServiceClient)
}

func createCharacterClient() (apiv1alpha1.CharacterServiceClient, func(), error) {
	return newClient(apiv1alpha1.NewCharacterServiceClient)
}

func createDiceClient() (apiv1alpha1.DiceServiceClient, func(), error) {
	return newClient(apiv1alpha1.NewDiceServiceClient)
}
