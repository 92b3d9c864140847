package repository

import (
	"context"
	"errors"
	"time"

	"toyauction/internal/domain/entities"
	"toyauction/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultAuctionsTableName = "auctions"
	auctionsStatusIndex      = "status-index"
)

type auctionItem struct {
	ID                   string   `dynamodbav:"id"`
	Name                 string   `dynamodbav:"name"`
	Image                string   `dynamodbav:"image,omitempty"`
	StartingPrice        string   `dynamodbav:"starting_price"`
	CurrentPrice         string   `dynamodbav:"current_price"`
	MinimumBidIncrement  string   `dynamodbav:"minimum_bid_increment"`
	ExpiresAt            string   `dynamodbav:"expires_at"`
	Status               string   `dynamodbav:"status"`
	FinalPrice           string   `dynamodbav:"final_price,omitempty"`
	OwnerID              string   `dynamodbav:"owner_id"`
	SellerPromptPay      string   `dynamodbav:"seller_promptpay,omitempty"`
	HighestBidderID      string   `dynamodbav:"highest_bidder_id,omitempty"`
	HighestBidderContact string   `dynamodbav:"highest_bidder_contact,omitempty"`
	BidIDs               []string `dynamodbav:"bid_ids,omitempty"`
	PaymentQR            string   `dynamodbav:"payment_qr,omitempty"`
	Version              int64    `dynamodbav:"version"`
	CreatedAt            string   `dynamodbav:"created_at"`
	UpdatedAt            string   `dynamodbav:"updated_at"`
}

// AuctionDynamoRepository persists Auction entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: status-index (PK: status, SK: expires_at)
//
// Bid acceptance goes through ApplyBid, which writes the auction update and
// the bid row in one TransactWriteItems conditioned on the auction version.

type AuctionDynamoRepository struct {
	ddb           *dynamodb.Client
	tableName     string
	bidsTableName string
}

var _ interfaces.IAuctionRepository = (*AuctionDynamoRepository)(nil)

func NewAuctionDynamoRepository(ddb *dynamodb.Client) *AuctionDynamoRepository {
	return &AuctionDynamoRepository{
		ddb:           ddb,
		tableName:     getenvDefault("AUCTIONS_TABLE", defaultAuctionsTableName),
		bidsTableName: getenvDefault("BIDS_TABLE", defaultBidsTableName),
	}
}

func (r *AuctionDynamoRepository) Create(ctx context.Context, a entities.Auction) (entities.Auction, error) {
	av, err := attributevalue.MarshalMap(toAuctionItem(a))
	if err != nil {
		return entities.Auction{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Auction{}, err
	}
	return a, nil
}

func (r *AuctionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Auction, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Auction{}, err
	}
	if len(out.Item) == 0 {
		return entities.Auction{}, nil
	}

	var it auctionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Auction{}, err
	}
	return fromAuctionItem(it), nil
}

func (r *AuctionDynamoRepository) List(ctx context.Context) ([]entities.Auction, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	return unmarshalAuctions(out.Items)
}

func (r *AuctionDynamoRepository) ListExpiredActive(ctx context.Context, now time.Time) ([]entities.Auction, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(auctionsStatusIndex),
		KeyConditionExpression: aws.String("#status = :active AND expires_at <= :now"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":active": &types.AttributeValueMemberS{Value: string(entities.AuctionStatusActive)},
			":now":    &types.AttributeValueMemberS{Value: timeToString(now)},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalAuctions(out.Items)
}

func (r *AuctionDynamoRepository) ListActive(ctx context.Context) ([]entities.Auction, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(auctionsStatusIndex),
		KeyConditionExpression: aws.String("#status = :active"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":active": &types.AttributeValueMemberS{Value: string(entities.AuctionStatusActive)},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalAuctions(out.Items)
}

// ApplyBid commits a bid: the auction row is rewritten conditioned on the
// version the caller read, and the bid row is inserted, atomically. A lost
// race surfaces as interfaces.ErrVersionConflict.
func (r *AuctionDynamoRepository) ApplyBid(ctx context.Context, a entities.Auction, b entities.Bid) (entities.Auction, error) {
	readVersion := a.Version
	a.Version = readVersion + 1
	a.UpdatedAt = b.CreatedAt

	bidIDs, err := attributevalue.MarshalList(a.BidIDs)
	if err != nil {
		return entities.Auction{}, err
	}
	bidAV, err := attributevalue.MarshalMap(toBidItem(b))
	if err != nil {
		return entities.Auction{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName: aws.String(r.tableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: a.ID},
					},
					ConditionExpression: aws.String("attribute_exists(#id) AND #version = :read_version AND #status = :active"),
					UpdateExpression: aws.String("SET current_price = :price, highest_bidder_id = :bidder, " +
						"highest_bidder_contact = :contact, bid_ids = :bid_ids, #version = :new_version, updated_at = :updated_at"),
					ExpressionAttributeNames: map[string]string{
						"#id":      "id",
						"#version": "version",
						"#status":  "status",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":price":        &types.AttributeValueMemberS{Value: floatToString(a.CurrentPrice)},
						":bidder":       &types.AttributeValueMemberS{Value: a.HighestBidderID},
						":contact":      &types.AttributeValueMemberS{Value: a.HighestBidderContact},
						":bid_ids":      &types.AttributeValueMemberL{Value: bidIDs},
						":read_version": &types.AttributeValueMemberN{Value: intToString(readVersion)},
						":new_version":  &types.AttributeValueMemberN{Value: intToString(a.Version)},
						":updated_at":   &types.AttributeValueMemberS{Value: timeToString(a.UpdatedAt)},
						":active":       &types.AttributeValueMemberS{Value: string(entities.AuctionStatusActive)},
					},
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(r.bidsTableName),
					Item:                bidAV,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
		},
	})
	if err != nil {
		if transactionConditionFailed(err) {
			return entities.Auction{}, interfaces.ErrVersionConflict
		}
		return entities.Auction{}, err
	}
	return a, nil
}

func (r *AuctionDynamoRepository) Close(ctx context.Context, id string, finalPrice float64, now time.Time) (entities.Auction, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :active"),
		UpdateExpression:    aws.String("SET #status = :ended, final_price = :final_price, updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":active":      &types.AttributeValueMemberS{Value: string(entities.AuctionStatusActive)},
			":ended":       &types.AttributeValueMemberS{Value: string(entities.AuctionStatusEnded)},
			":final_price": &types.AttributeValueMemberS{Value: floatToString(finalPrice)},
			":updated_at":  &types.AttributeValueMemberS{Value: timeToString(now)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Auction{}, nil
		}
		return entities.Auction{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Auction{}, nil
	}

	var it auctionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Auction{}, err
	}
	return fromAuctionItem(it), nil
}

func (r *AuctionDynamoRepository) SetPaymentQR(ctx context.Context, id, qr string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET payment_qr = :qr"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qr": &types.AttributeValueMemberS{Value: qr},
		},
	})
	return err
}

// transactionConditionFailed reports whether a TransactWriteItems error was a
// lost conditional check (as opposed to an infrastructure failure).
func transactionConditionFailed(err error) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return false
	}
	for _, reason := range tce.CancellationReasons {
		if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
			return true
		}
	}
	return false
}

func unmarshalAuctions(items []map[string]types.AttributeValue) ([]entities.Auction, error) {
	auctions := make([]entities.Auction, 0, len(items))
	for _, raw := range items {
		var it auctionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		auctions = append(auctions, fromAuctionItem(it))
	}
	return auctions, nil
}

func toAuctionItem(a entities.Auction) auctionItem {
	it := auctionItem{
		ID:                   a.ID,
		Name:                 a.Name,
		Image:                a.Image,
		StartingPrice:        floatToString(a.StartingPrice),
		CurrentPrice:         floatToString(a.CurrentPrice),
		MinimumBidIncrement:  floatToString(a.MinimumBidIncrement),
		ExpiresAt:            timeToString(a.ExpiresAt),
		Status:               string(a.Status),
		OwnerID:              a.OwnerID,
		SellerPromptPay:      a.SellerPromptPay,
		HighestBidderID:      a.HighestBidderID,
		HighestBidderContact: a.HighestBidderContact,
		BidIDs:               a.BidIDs,
		PaymentQR:            a.PaymentQR,
		Version:              a.Version,
		CreatedAt:            timeToString(a.CreatedAt),
		UpdatedAt:            timeToString(a.UpdatedAt),
	}
	if a.Status == entities.AuctionStatusEnded {
		it.FinalPrice = floatToString(a.FinalPrice)
	}
	return it
}

func fromAuctionItem(it auctionItem) entities.Auction {
	a := entities.Auction{
		ID:                   it.ID,
		Name:                 it.Name,
		Image:                it.Image,
		ExpiresAt:            parseTime(it.ExpiresAt),
		Status:               entities.AuctionStatus(it.Status),
		OwnerID:              it.OwnerID,
		SellerPromptPay:      it.SellerPromptPay,
		HighestBidderID:      it.HighestBidderID,
		HighestBidderContact: it.HighestBidderContact,
		BidIDs:               it.BidIDs,
		PaymentQR:            it.PaymentQR,
		Version:              it.Version,
		CreatedAt:            parseTime(it.CreatedAt),
		UpdatedAt:            parseTime(it.UpdatedAt),
	}
	a.StartingPrice = parseFloat(it.StartingPrice)
	a.CurrentPrice = parseFloat(it.CurrentPrice)
	a.MinimumBidIncrement = parseFloat(it.MinimumBidIncrement)
	a.FinalPrice = parseFloat(it.FinalPrice)
	return a
}
