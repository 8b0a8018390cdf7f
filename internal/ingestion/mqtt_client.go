package ingestion

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"shipment-dashboard/internal/logger"
	pkgmqtt "shipment-dashboard/pkg/mqtt"
)

// MQTTConfig describes the topics and connection parameters for tracker
// ingestion.
type MQTTConfig struct {
	ClientConfig  *pkgmqtt.Config
	ReportTopic   string
	LocationTopic string
	QoS           byte
}

// MQTTClient wires broker messages into the processor.
type MQTTClient struct {
	cfg       *MQTTConfig
	client    *pkgmqtt.Client
	processor *Processor

	mu            sync.Mutex
	started       bool
	subscriptions []string
}

func NewMQTTClient(cfg *MQTTConfig, processor *Processor) (*MQTTClient, error) {
	if cfg == nil || cfg.ClientConfig == nil {
		return nil, errors.New("mqtt ingestion config is not configured")
	}
	if processor == nil {
		return nil, errors.New("processor is required")
	}

	return &MQTTClient{
		cfg:       cfg,
		client:    pkgmqtt.NewClient(cfg.ClientConfig),
		processor: processor,
	}, nil
}

// Start connects to the broker and subscribes to the tracker topics.
func (c *MQTTClient) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.started {
		return nil
	}

	if err := c.client.Connect(); err != nil {
		return fmt.Errorf("failed to connect to MQTT broker: %w", err)
	}

	type subscription struct {
		topic   string
		handler pkgmqtt.MessageHandler
	}

	subs := []subscription{}
	if c.cfg.ReportTopic != "" {
		subs = append(subs, subscription{topic: c.cfg.ReportTopic, handler: c.handleReport})
	}
	if c.cfg.LocationTopic != "" {
		subs = append(subs, subscription{topic: c.cfg.LocationTopic, handler: c.handleLocation})
	}
	if len(subs) == 0 {
		return errors.New("no MQTT topics configured for ingestion")
	}

	for _, sub := range subs {
		if err := c.client.Subscribe(sub.topic, c.cfg.QoS, sub.handler); err != nil {
			c.client.Disconnect()
			return fmt.Errorf("subscribe failed for topic %s: %w", sub.topic, err)
		}
		c.subscriptions = append(c.subscriptions, sub.topic)
		logger.Info("Subscribed to tracker topic", zap.String("topic", sub.topic))
	}

	c.started = true
	return nil
}

// Stop unsubscribes and disconnects from the broker.
func (c *MQTTClient) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.started {
		return
	}

	if len(c.subscriptions) > 0 {
		if err := c.client.Unsubscribe(c.subscriptions...); err != nil {
			logger.Warn("Failed to unsubscribe from tracker topics", zap.Error(err))
		}
	}

	c.client.Disconnect()
	c.started = false
	c.subscriptions = nil
}

func (c *MQTTClient) handleReport(_ string, payload []byte) {
	msg, err := ParseReportMessage(payload)
	if err != nil {
		logger.Warn("Invalid report payload", zap.Error(err))
		return
	}
	c.processor.EnqueueReport(msg)
}

func (c *MQTTClient) handleLocation(_ string, payload []byte) {
	msg, err := ParseLocationMessage(payload)
	if err != nil {
		logger.Warn("Invalid location payload", zap.Error(err))
		return
	}
	c.processor.EnqueueLocation(msg)
}
