package notification

import (
	"context"

	"toyauction/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

// LogWinnerNotifier is the fallback when no Kafka brokers are configured.

type LogWinnerNotifier struct{}

var _ interfaces.IWinnerNotifier = (*LogWinnerNotifier)(nil)

func NewLogWinnerNotifier() *LogWinnerNotifier {
	return &LogWinnerNotifier{}
}

func (n *LogWinnerNotifier) NotifyWinner(_ context.Context, contact, auctionName string, finalPrice float64) error {
	logrus.WithFields(logrus.Fields{
		"contact":      contact,
		"auction_name": auctionName,
		"final_price":  finalPrice,
	}).Info("auction winner notified")
	return nil
}
