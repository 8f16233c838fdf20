package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"net"

	"google.golang.org/grpc"

	notifyv1 "github.com/osokin/eventbook/api/gen/go/notify/v1"
)

// AcceptedMessage is the response body for every accepted delivery.
const AcceptedMessage = "The notification was received successfully"

// Server implements the notify.v1.NotificationSender gRPC API. It keeps no
// state: every call is logged and acknowledged.
type Server struct {
	notifyv1.UnimplementedNotificationSenderServer
	logger *slog.Logger
}

// NewServer creates a Server logging through logger.
func NewServer(logger *slog.Logger) *Server {
	return &Server{logger: logger}
}

// SendNotification accepts a notification record and echoes it back.
func (s *Server) SendNotification(
	_ context.Context, in *notifyv1.Notification,
) (*notifyv1.NotificationResponse, error) {
	s.logger.Info("notification received",
		slog.Int64("id", in.GetId()),
		slog.Int64("user_id", in.GetUserId()),
		slog.String("type", in.GetType().String()),
		slog.String("title", in.GetTitle()),
		slog.String("message", in.GetMessage()),
	)

	return &notifyv1.NotificationResponse{
		Success:      true,
		Message:      AcceptedMessage,
		Notification: in,
	}, nil
}

// Serve listens on addr and serves until ctx is cancelled. maxInFlight bounds
// concurrent in-flight calls.
func Serve(ctx context.Context, addr string, maxInFlight uint32, logger *slog.Logger) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}

	srv := grpc.NewServer(
		grpc.MaxConcurrentStreams(maxInFlight),
		grpc.NumStreamWorkers(maxInFlight),
	)
	notifyv1.RegisterNotificationSenderServer(srv, NewServer(logger))

	go func() {
		<-ctx.Done()
		srv.GracefulStop()
	}()

	logger.Info("gateway listening", slog.String("addr", addr))

	if err := srv.Serve(lis); err != nil {
		return fmt.Errorf("serve gateway: %w", err)
	}

	return nil
}
