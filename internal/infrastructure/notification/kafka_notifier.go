package notification

import (
	"context"
	"encoding/json"

	"toyauction/internal/usecase/interfaces"

	"github.com/IBM/sarama"
	"github.com/sirupsen/logrus"
)

const winnerTopic = "auction.winner"

type winnerEvent struct {
	EventType string          `json:"event_type"`
	Data      winnerEventData `json:"data"`
}

type winnerEventData struct {
	Contact     string  `json:"contact"`
	AuctionName string  `json:"auction_name"`
	FinalPrice  float64 `json:"final_price"`
}

// KafkaWinnerNotifier publishes closure notifications to the auction.winner
// topic. A downstream consumer turns them into emails or push messages.

type KafkaWinnerNotifier struct {
	producer sarama.SyncProducer
}

var _ interfaces.IWinnerNotifier = (*KafkaWinnerNotifier)(nil)

func NewKafkaWinnerNotifier(brokers []string) (*KafkaWinnerNotifier, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}
	return &KafkaWinnerNotifier{producer: producer}, nil
}

func (n *KafkaWinnerNotifier) NotifyWinner(ctx context.Context, contact, auctionName string, finalPrice float64) error {
	payload, err := json.Marshal(winnerEvent{
		EventType: "auction_won",
		Data: winnerEventData{
			Contact:     contact,
			AuctionName: auctionName,
			FinalPrice:  finalPrice,
		},
	})
	if err != nil {
		return err
	}

	partition, offset, err := n.producer.SendMessage(&sarama.ProducerMessage{
		Topic: winnerTopic,
		Key:   sarama.StringEncoder(contact),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"topic":     winnerTopic,
		"partition": partition,
		"offset":    offset,
	}).Info("winner notification published")
	return nil
}

func (n *KafkaWinnerNotifier) Close() error {
	return n.producer.Close()
}
