// Package client provides commands that call a running library server
package client

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	"github.com/laasilva/dracolich-library-api-sub000/internal/handlers/library/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration

	// dialOptions are appended to every connection
	dialOptions []grpc.DialOption
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Query a running library server",
	Long:  `Client commands make real gRPC requests and print the responses as JSON.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	ClientCmd.AddCommand(getClassCmd)
	ClientCmd.AddCommand(listClassesCmd)
	ClientCmd.AddCommand(getRaceCmd)
	ClientCmd.AddCommand(listRacesCmd)
	ClientCmd.AddCommand(getSpellCmd)
	ClientCmd.AddCommand(listSpellsCmd)
	ClientCmd.AddCommand(listFeaturesCmd)
	ClientCmd.AddCommand(listAttributesCmd)
	ClientCmd.AddCommand(listAlignmentsCmd)
	ClientCmd.AddCommand(listBackgroundsCmd)
	ClientCmd.AddCommand(listEquipmentCmd)
	ClientCmd.AddCommand(getEquipmentCmd)
}

// createLibraryClient connects to the server and returns a library client
func createLibraryClient() (v1alpha1.LibraryServiceClient, func(), error) {
	opts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}, dialOptions...)
	conn, err := grpc.NewClient(serverAddr, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewLibraryServiceClient(conn), cleanup, nil
}

// call opens a connection, runs fn with a timeout and prints its response
func call[Resp proto.Message](cmd *cobra.Command, fn func(context.Context, v1alpha1.LibraryServiceClient) (Resp, error)) error {
	client, cleanup, err := createLibraryClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	resp, err := fn(ctx, client)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), resp)
}

func printJSON(w io.Writer, msg proto.Message) error {
	data, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
