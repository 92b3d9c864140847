package repository

import (
	"context"
	"sort"

	"toyauction/internal/domain/entities"
	"toyauction/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBidsTableName = "bids"
	bidsAuctionIDIndex   = "auction_id-index"
)

type bidItem struct {
	ID        string `dynamodbav:"id"`
	AuctionID string `dynamodbav:"auction_id"`
	UserID    string `dynamodbav:"user_id"`
	Amount    string `dynamodbav:"amount"`
	CreatedAt string `dynamodbav:"created_at"`
}

// BidDynamoRepository reads the append-only bid ledger.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: auction_id-index (PK: auction_id)
//
// Writes happen inside AuctionDynamoRepository.ApplyBid so the ledger row and
// the auction update share one transaction.

type BidDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBidRepository = (*BidDynamoRepository)(nil)

func NewBidDynamoRepository(ddb *dynamodb.Client) *BidDynamoRepository {
	return &BidDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BIDS_TABLE", defaultBidsTableName),
	}
}

func (r *BidDynamoRepository) ListByAuctionID(ctx context.Context, auctionID string) ([]entities.Bid, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(bidsAuctionIDIndex),
		KeyConditionExpression: aws.String("auction_id = :aid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":aid": &types.AttributeValueMemberS{Value: auctionID},
		},
	})
	if err != nil {
		return nil, err
	}

	bids := make([]entities.Bid, 0, len(out.Items))
	for _, raw := range out.Items {
		var it bidItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		bids = append(bids, fromBidItem(it))
	}

	// The GSI has no sort key; history is served newest first.
	sort.Slice(bids, func(i, j int) bool {
		return bids[i].CreatedAt.After(bids[j].CreatedAt)
	})
	return bids, nil
}

func toBidItem(b entities.Bid) bidItem {
	return bidItem{
		ID:        b.ID,
		AuctionID: b.AuctionID,
		UserID:    b.UserID,
		Amount:    floatToString(b.Amount),
		CreatedAt: timeToString(b.CreatedAt),
	}
}

func fromBidItem(it bidItem) entities.Bid {
	return entities.Bid{
		ID:        it.ID,
		AuctionID: it.AuctionID,
		UserID:    it.UserID,
		Amount:    parseFloat(it.Amount),
		CreatedAt: parseTime(it.CreatedAt),
	}
}
