package natsio

import (
	nats "github.com/nats-io/nats.go"
	"github.com/nsyszr/festival/pkg/client"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type natsClient struct {
	cfg *Config
	nc  *nats.Conn
}

// New connects to the NATS server of cfg
func New(cfg *Config) (client.Interface, error) {
	nc, err := nats.Connect(cfg.url,
		nats.Name(cfg.name),
		nats.DrainTimeout(cfg.drainTimeout),
		nats.ErrorHandler(func(_ *nats.Conn, sub *nats.Subscription, err error) {
			fields := log.Fields{}
			if sub != nil {
				fields["subject"] = sub.Subject
			}
			log.WithFields(fields).Error("natsio: async error: ", err)
		}),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			log.Warn("natsio: disconnected: ", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.WithField("url", nc.ConnectedUrl()).Info("natsio: reconnected")
		}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to nats")
	}

	return &natsClient{
		cfg: cfg,
		nc:  nc,
	}, nil
}

func (c *natsClient) Publish(subject string, data []byte) error {
	return c.nc.Publish(subject, data)
}

func (c *natsClient) Subscribe(subject string, fn func(subject string, data []byte)) (func() error, error) {
	sub, err := c.nc.Subscribe(subject, func(msg *nats.Msg) {
		fn(msg.Subject, msg.Data)
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to subscribe to %s", subject)
	}

	return sub.Unsubscribe, nil
}

// Close drains the connection, pending messages are flushed first
func (c *natsClient) Close() {
	if c.nc == nil {
		return
	}
	if err := c.nc.Drain(); err != nil {
		log.Warn("natsio: failed to drain connection: ", err)
		c.nc.Close()
	}
}
