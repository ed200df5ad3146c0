package repository

import (
	"context"
	"strconv"
	"time"

	"lojinha_pricing/internal/domain/entities"
	"lojinha_pricing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultRatesTableName = "installment_rates"

type installmentRateItem struct {
	Installments int    `dynamodbav:"installments"`
	Rate         string `dynamodbav:"rate"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// InstallmentRateDynamoRepository persists the rate table in DynamoDB.
//
// Table requirements:
//   - PK: installments (number)
//
// The installment count being the PK guarantees at most one rate per
// count, so AddRate/UpdateRate collapse to a single Put.
type InstallmentRateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInstallmentRateRepository = (*InstallmentRateDynamoRepository)(nil)

// The repository doubles as the rate source in deployments without a
// remote configuration endpoint.
var _ interfaces.IRateSource = (*InstallmentRateDynamoRepository)(nil)

func NewInstallmentRateDynamoRepository(ddb *dynamodb.Client) *InstallmentRateDynamoRepository {
	return &InstallmentRateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RATES_TABLE", defaultRatesTableName),
	}
}

func (r *InstallmentRateDynamoRepository) List(ctx context.Context) ([]entities.InstallmentRate, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	rates := make([]entities.InstallmentRate, 0, len(out.Items))
	for _, raw := range out.Items {
		var it installmentRateItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		rates = append(rates, fromInstallmentRateItem(it))
	}
	return rates, nil
}

// FetchRates satisfies the rate source contract.
func (r *InstallmentRateDynamoRepository) FetchRates(ctx context.Context) ([]entities.InstallmentRate, error) {
	return r.List(ctx)
}

func (r *InstallmentRateDynamoRepository) GetByInstallments(ctx context.Context, installments int) (entities.InstallmentRate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"installments": &types.AttributeValueMemberN{Value: strconv.Itoa(installments)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.InstallmentRate{}, err
	}
	if len(out.Item) == 0 {
		return entities.InstallmentRate{}, nil
	}

	var it installmentRateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.InstallmentRate{}, err
	}
	return fromInstallmentRateItem(it), nil
}

func (r *InstallmentRateDynamoRepository) Put(ctx context.Context, rate entities.InstallmentRate) (entities.InstallmentRate, error) {
	av, err := attributevalue.MarshalMap(toInstallmentRateItem(rate))
	if err != nil {
		return entities.InstallmentRate{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.InstallmentRate{}, err
	}
	return rate, nil
}

func (r *InstallmentRateDynamoRepository) Delete(ctx context.Context, installments int) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"installments": &types.AttributeValueMemberN{Value: strconv.Itoa(installments)},
		},
	})
	return err
}

func toInstallmentRateItem(rate entities.InstallmentRate) installmentRateItem {
	return installmentRateItem{
		Installments: rate.Installments,
		Rate:         floatToString(rate.Rate),
		CreatedAt:    rate.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    rate.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromInstallmentRateItem(it installmentRateItem) entities.InstallmentRate {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	rate, _ := strconv.ParseFloat(it.Rate, 64)
	return entities.InstallmentRate{
		Installments: it.Installments,
		Rate:         rate,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}
