package repository

import (
	"context"

	"toyauction/internal/domain/entities"
	"toyauction/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProfilesTableName = "profiles"

type profileAddressItem struct {
	Label       string `dynamodbav:"label"`
	FullAddress string `dynamodbav:"full_address"`
	Name        string `dynamodbav:"name"`
	Phone       string `dynamodbav:"phone"`
	IsDefault   bool   `dynamodbav:"is_default"`
}

type profileItem struct {
	UserID      string               `dynamodbav:"user_id"`
	Name        string               `dynamodbav:"name"`
	Email       string               `dynamodbav:"email"`
	Phone       string               `dynamodbav:"phone,omitempty"`
	PromptPayID string               `dynamodbav:"promptpay_id,omitempty"`
	Addresses   []profileAddressItem `dynamodbav:"addresses,omitempty"`
}

// ProfileDynamoRepository reads the account service's profiles table.
// This service never writes it.

type ProfileDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProfileRepository = (*ProfileDynamoRepository)(nil)

func NewProfileDynamoRepository(ddb *dynamodb.Client) *ProfileDynamoRepository {
	return &ProfileDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROFILES_TABLE", defaultProfilesTableName),
	}
}

func (r *ProfileDynamoRepository) GetByUserID(ctx context.Context, userID string) (entities.Profile, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return entities.Profile{}, err
	}
	if len(out.Item) == 0 {
		return entities.Profile{}, nil
	}

	var it profileItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Profile{}, err
	}

	addresses := make([]entities.Address, 0, len(it.Addresses))
	for _, a := range it.Addresses {
		addresses = append(addresses, entities.Address{
			Label:       a.Label,
			FullAddress: a.FullAddress,
			Name:        a.Name,
			Phone:       a.Phone,
			IsDefault:   a.IsDefault,
		})
	}

	return entities.Profile{
		UserID:      it.UserID,
		Name:        it.Name,
		Email:       it.Email,
		Phone:       it.Phone,
		PromptPayID: it.PromptPayID,
		Addresses:   addresses,
	}, nil
}
