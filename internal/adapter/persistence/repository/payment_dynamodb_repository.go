package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"toyauction/internal/domain/entities"
	"toyauction/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "payments"
	paymentsAuctionIDIndex   = "auction_id-index"
	paymentsUserIDIndex      = "user_id-index"
)

type paymentItem struct {
	ID                  string `dynamodbav:"id"`
	AuctionID           string `dynamodbav:"auction_id"`
	UserID              string `dynamodbav:"user_id"`
	Amount              string `dynamodbav:"amount"`
	QRCode              string `dynamodbav:"qr_code"`
	SlipImage           string `dynamodbav:"slip_image,omitempty"`
	Status              string `dynamodbav:"status"`
	ShippingAddress     string `dynamodbav:"shipping_address,omitempty"`
	RecipientName       string `dynamodbav:"recipient_name,omitempty"`
	RecipientPhone      string `dynamodbav:"recipient_phone,omitempty"`
	ShippingStatus      string `dynamodbav:"shipping_status"`
	TrackingNumber      string `dynamodbav:"tracking_number,omitempty"`
	Note                string `dynamodbav:"note,omitempty"`
	IsPaid              bool   `dynamodbav:"is_paid"`
	PaymentConfirmedAt  string `dynamodbav:"payment_confirmed_at,omitempty"`
	DeliveryConfirmedAt string `dynamodbav:"delivery_confirmed_at,omitempty"`
	ExpiresAt           string `dynamodbav:"expires_at"`
	CreatedAt           string `dynamodbav:"created_at"`
	UpdatedAt           string `dynamodbav:"updated_at"`
}

// unpaidGuardItem enforces "at most one unpaid payment per (auction, user)".
// It shares the payments table but carries no auction_id attribute, so it
// never shows up in the GSIs.
type unpaidGuardItem struct {
	ID        string `dynamodbav:"id"`
	PaymentID string `dynamodbav:"payment_id"`
}

func unpaidGuardID(auctionID, userID string) string {
	return fmt.Sprintf("UNPAID#%s#%s", auctionID, userID)
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: auction_id-index (PK: auction_id)
//   - GSI: user_id-index (PK: user_id)
//
// CreateUnpaid/Approve write the payment and its uniqueness guard item in one
// TransactWriteItems, mirroring the partial unique index the data model asks
// for.

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) CreateUnpaid(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	paymentAV, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
	}
	guardAV, err := attributevalue.MarshalMap(unpaidGuardItem{
		ID:        unpaidGuardID(p.AuctionID, p.UserID),
		PaymentID: p.ID,
	})
	if err != nil {
		return entities.Payment{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                paymentAV,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                guardAV,
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
			return entities.Payment{}, interfaces.ErrDuplicateUnpaid
		}
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

// GetUnpaidByAuctionAndUser resolves through the guard item, which is the
// authoritative record of which unpaid payment holds the uniqueness slot.
func (r *PaymentDynamoRepository) GetUnpaidByAuctionAndUser(ctx context.Context, auctionID, userID string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: unpaidGuardID(auctionID, userID)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var guard unpaidGuardItem
	if err := attributevalue.UnmarshalMap(out.Item, &guard); err != nil {
		return entities.Payment{}, err
	}
	return r.GetByID(ctx, guard.PaymentID)
}

func (r *PaymentDynamoRepository) GetLatestByAuctionID(ctx context.Context, auctionID string) (entities.Payment, error) {
	payments, err := r.listByAuctionID(ctx, auctionID)
	if err != nil {
		return entities.Payment{}, err
	}
	if len(payments) == 0 {
		return entities.Payment{}, nil
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.CreatedAt.After(latest.CreatedAt) {
			latest = p
		}
	}
	return latest, nil
}

func (r *PaymentDynamoRepository) listByAuctionID(ctx context.Context, auctionID string) ([]entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsAuctionIDIndex),
		KeyConditionExpression: aws.String("auction_id = :aid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":aid": &types.AttributeValueMemberS{Value: auctionID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalPayments(out.Items)
}

func (r *PaymentDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalPayments(out.Items)
}

// ListByStatus scans with a filter. Admin-only review queues, low volume.
func (r *PaymentDynamoRepository) ListByStatus(ctx context.Context, statuses ...entities.PaymentStatus) ([]entities.Payment, error) {
	if len(statuses) == 0 {
		return nil, nil
	}

	filter := "#status = :s0"
	values := map[string]types.AttributeValue{
		":s0": &types.AttributeValueMemberS{Value: string(statuses[0])},
	}
	for i, s := range statuses[1:] {
		placeholder := fmt.Sprintf(":s%d", i+1)
		filter += fmt.Sprintf(" OR #status = %s", placeholder)
		values[placeholder] = &types.AttributeValueMemberS{Value: string(s)}
	}

	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String(filter),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: values,
	})
	if err != nil {
		return nil, err
	}
	return unmarshalPayments(out.Items)
}

// ListPaidBetween scans for paid records and applies the time window in
// process; payment_confirmed_at has no index to query against.
func (r *PaymentDynamoRepository) ListPaidBetween(ctx context.Context, start, end time.Time) ([]entities.Payment, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("is_paid = :paid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":paid": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	if err != nil {
		return nil, err
	}

	payments, err := unmarshalPayments(out.Items)
	if err != nil {
		return nil, err
	}

	filtered := make([]entities.Payment, 0, len(payments))
	for _, p := range payments {
		if p.PaymentConfirmedAt == nil {
			continue
		}
		at := *p.PaymentConfirmedAt
		if !at.Before(start) && !at.After(end) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (r *PaymentDynamoRepository) SetSlip(ctx context.Context, id, slipImage string) (entities.Payment, error) {
	return r.update(ctx, id, nil, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET slip_image = :slip, #status = :status, updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":slip":       &types.AttributeValueMemberS{Value: slipImage},
			":status":     &types.AttributeValueMemberS{Value: string(entities.PaymentStatusUploaded)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status": "status",
		}
		return expr, vals, names
	})
}

// Approve flips the paid flag and releases the uniqueness guard in one
// transaction, so a later QR request can open a fresh payment.
func (r *PaymentDynamoRepository) Approve(ctx context.Context, id string, confirmedAt time.Time) (entities.Payment, error) {
	p, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, nil
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName: aws.String(r.tableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: id},
					},
					ConditionExpression: aws.String("attribute_exists(#id)"),
					UpdateExpression: aws.String("SET is_paid = :paid, #status = :status, " +
						"payment_confirmed_at = :confirmed_at, updated_at = :updated_at"),
					ExpressionAttributeNames: map[string]string{
						"#id":     "id",
						"#status": "status",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":paid":         &types.AttributeValueMemberBOOL{Value: true},
						":status":       &types.AttributeValueMemberS{Value: string(entities.PaymentStatusApproved)},
						":confirmed_at": &types.AttributeValueMemberS{Value: timeToString(confirmedAt)},
						":updated_at":   &types.AttributeValueMemberS{Value: timeToString(confirmedAt)},
					},
				},
			},
			{
				Delete: &types.Delete{
					TableName: aws.String(r.tableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: unpaidGuardID(p.AuctionID, p.UserID)},
					},
				},
			},
		},
	})
	if err != nil {
		if transactionConditionFailed(err) {
			return entities.Payment{}, nil
		}
		return entities.Payment{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *PaymentDynamoRepository) Reject(ctx context.Context, id string) (entities.Payment, error) {
	return r.update(ctx, id, nil, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(entities.PaymentStatusRejected)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status": "status",
		}
		return expr, vals, names
	})
}

func (r *PaymentDynamoRepository) UpdateShipping(ctx context.Context, id string, status entities.ShippingStatus, trackingNumber string) (entities.Payment, error) {
	return r.update(ctx, id, nil, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET shipping_status = :shipping, tracking_number = :tracking, updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":shipping":   &types.AttributeValueMemberS{Value: string(status)},
			":tracking":   &types.AttributeValueMemberS{Value: trackingNumber},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		return expr, vals, nil
	})
}

func (r *PaymentDynamoRepository) UpdateShippingAddress(ctx context.Context, id, address, recipientName, recipientPhone, note string) (entities.Payment, error) {
	return r.update(ctx, id, nil, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET shipping_address = :address, recipient_name = :name, " +
			"recipient_phone = :phone, note = :note, updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":address":    &types.AttributeValueMemberS{Value: address},
			":name":       &types.AttributeValueMemberS{Value: recipientName},
			":phone":      &types.AttributeValueMemberS{Value: recipientPhone},
			":note":       &types.AttributeValueMemberS{Value: note},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		return expr, vals, nil
	})
}

func (r *PaymentDynamoRepository) ConfirmDelivery(ctx context.Context, id string, confirmedAt time.Time) (entities.Payment, error) {
	condition := "attribute_exists(#id) AND shipping_status = :delivered"
	return r.update(ctx, id, &condition, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET shipping_status = :completed, delivery_confirmed_at = :confirmed_at, updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":delivered":    &types.AttributeValueMemberS{Value: string(entities.ShippingDelivered)},
			":completed":    &types.AttributeValueMemberS{Value: string(entities.ShippingCompleted)},
			":confirmed_at": &types.AttributeValueMemberS{Value: timeToString(confirmedAt)},
			":updated_at":   &types.AttributeValueMemberS{Value: now},
		}
		return expr, vals, nil
	})
}

func (r *PaymentDynamoRepository) update(
	ctx context.Context,
	id string,
	condition *string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Payment, error) {
	now := timeToString(time.Now())
	updateExpr, values, names := build(now)

	cond := "attribute_exists(#id)"
	if condition != nil {
		cond = *condition
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(cond),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Payment{}, nil
		}
		return entities.Payment{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func unmarshalPayments(items []map[string]types.AttributeValue) ([]entities.Payment, error) {
	payments := make([]entities.Payment, 0, len(items))
	for _, raw := range items {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		payments = append(payments, fromPaymentItem(it))
	}
	return payments, nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:                  p.ID,
		AuctionID:           p.AuctionID,
		UserID:              p.UserID,
		Amount:              floatToString(p.Amount),
		QRCode:              p.QRCode,
		SlipImage:           p.SlipImage,
		Status:              string(p.Status),
		ShippingAddress:     p.ShippingAddress,
		RecipientName:       p.RecipientName,
		RecipientPhone:      p.RecipientPhone,
		ShippingStatus:      string(p.ShippingStatus),
		TrackingNumber:      p.TrackingNumber,
		Note:                p.Note,
		IsPaid:              p.IsPaid,
		PaymentConfirmedAt:  timePtrToString(p.PaymentConfirmedAt),
		DeliveryConfirmedAt: timePtrToString(p.DeliveryConfirmedAt),
		ExpiresAt:           timeToString(p.ExpiresAt),
		CreatedAt:           timeToString(p.CreatedAt),
		UpdatedAt:           timeToString(p.UpdatedAt),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	return entities.Payment{
		ID:                  it.ID,
		AuctionID:           it.AuctionID,
		UserID:              it.UserID,
		Amount:              parseFloat(it.Amount),
		QRCode:              it.QRCode,
		SlipImage:           it.SlipImage,
		Status:              entities.PaymentStatus(it.Status),
		ShippingAddress:     it.ShippingAddress,
		RecipientName:       it.RecipientName,
		RecipientPhone:      it.RecipientPhone,
		ShippingStatus:      entities.ShippingStatus(it.ShippingStatus),
		TrackingNumber:      it.TrackingNumber,
		Note:                it.Note,
		IsPaid:              it.IsPaid,
		PaymentConfirmedAt:  parseTimePtr(it.PaymentConfirmedAt),
		DeliveryConfirmedAt: parseTimePtr(it.DeliveryConfirmedAt),
		ExpiresAt:           parseTime(it.ExpiresAt),
		CreatedAt:           parseTime(it.CreatedAt),
		UpdatedAt:           parseTime(it.UpdatedAt),
	}
}
