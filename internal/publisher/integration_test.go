//go:build integration

package publisher

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/raffopenssh/inspire-austria/internal/domain"
)

type RabbitMQIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *rabbitmq.RabbitMQContainer
	amqpURL   string
	logger    *slog.Logger
}

func (s *RabbitMQIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	container, err := rabbitmq.Run(s.ctx,
		"rabbitmq:3.13-management-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Server startup complete").
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	amqpURL, err := container.AmqpURL(s.ctx)
	s.Require().NoError(err)
	s.amqpURL = amqpURL
}

func (s *RabbitMQIntegrationSuite) TearDownSuite() {
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func TestRabbitMQIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RabbitMQIntegrationSuite))
}

func (s *RabbitMQIntegrationSuite) TestPublisher_Connection() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange",
		RoutingKey: "test-routing-key",
		QueueName:  "test-queue",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.NoError(err)
	s.NotNil(pub)

	err = pub.Close()
	s.NoError(err)
}

func (s *RabbitMQIntegrationSuite) TestPublisher_PublishStatus() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-status",
		RoutingKey: "test-routing-key-status",
		QueueName:  "test-queue-status",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	now := time.Now().Truncate(time.Millisecond)
	st := &domain.ServiceStatus{
		DatasetID:    "ds-1",
		URL:          "https://gis.example.at/wfs",
		ServiceType:  domain.ServiceWFS,
		LastChecked:  now,
		Status:       domain.StatusWorking,
		SampleFields: []string{"OBJECTID", "WIDMUNG"},
		CheckCount:   3,
		SuccessCount: 3,
	}

	err = pub.PublishStatus(s.ctx, st)
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.NotNil(msg)
	s.Equal("application/json", msg.ContentType)

	var received StatusMessage
	err = json.Unmarshal(msg.Body, &received)
	s.NoError(err)
	s.Equal("ds-1", received.Status.DatasetID)
	s.Equal("https://gis.example.at/wfs", received.Status.URL)
	s.Equal(domain.StatusWorking, received.Status.Status)
	s.Equal([]string{"OBJECTID", "WIDMUNG"}, received.Status.SampleFields)
	s.Equal(3, received.Status.CheckCount)
	s.False(received.Timestamp.IsZero())
}

func (s *RabbitMQIntegrationSuite) TestPublisher_PublishFailure() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-failure",
		RoutingKey: "test-routing-key-failure",
		QueueName:  "test-queue-failure",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	st := &domain.ServiceStatus{
		DatasetID:    "ds-2",
		URL:          "https://gis.example.at/down",
		ServiceType:  domain.ServiceOGCAPI,
		LastChecked:  time.Now(),
		Status:       domain.StatusTimeout,
		ErrorMessage: "deadline exceeded",
	}

	err = pub.PublishStatus(s.ctx, st)
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.NotNil(msg)

	var received StatusMessage
	err = json.Unmarshal(msg.Body, &received)
	s.NoError(err)
	s.Equal(domain.StatusTimeout, received.Status.Status)
	s.Equal("deadline exceeded", received.Status.ErrorMessage)
	s.Empty(received.Status.SampleFields)
}

func (s *RabbitMQIntegrationSuite) TestPublisher_MessagePersistence() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-persist",
		RoutingKey: "test-routing-key-persist",
		QueueName:  "test-queue-persist",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	err = pub.PublishStatus(s.ctx, &domain.ServiceStatus{
		URL:         "https://gis.example.at/persist",
		ServiceType: domain.ServiceWFS,
		LastChecked: time.Now(),
		Status:      domain.StatusWorking,
	})
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.NotNil(msg)
	s.Equal(uint8(amqp.Persistent), msg.DeliveryMode)
}

func (s *RabbitMQIntegrationSuite) consumeMessage(cfg Config) *amqp.Delivery {
	conn, err := amqp.Dial(s.amqpURL)
	s.Require().NoError(err)
	defer conn.Close()

	ch, err := conn.Channel()
	s.Require().NoError(err)
	defer ch.Close()

	msgs, err := ch.Consume(cfg.QueueName, "", true, false, false, false, nil)
	s.Require().NoError(err)

	select {
	case msg := <-msgs:
		return &msg
	case <-time.After(5 * time.Second):
		s.Fail("Timeout waiting for message")
		return nil
	}
}
