package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"lojinha_pricing/internal/domain/entities"
	"lojinha_pricing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCouponsTableName = "coupons"

type couponItem struct {
	Code            string `dynamodbav:"code"`
	ID              string `dynamodbav:"id"`
	Active          bool   `dynamodbav:"active"`
	DiscountPercent string `dynamodbav:"discount_percent"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// CouponDynamoRepository persists Coupon entities in DynamoDB.
//
// Table requirements:
//   - PK: code (string)
//
// We purposely use the coupon code as PK to guarantee 1 coupon per code,
// which keeps validation a single consistent GetItem.
type CouponDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICouponRepository = (*CouponDynamoRepository)(nil)

func NewCouponDynamoRepository(ddb *dynamodb.Client) *CouponDynamoRepository {
	return &CouponDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COUPONS_TABLE", defaultCouponsTableName),
	}
}

func (r *CouponDynamoRepository) Create(ctx context.Context, c entities.Coupon) (entities.Coupon, error) {
	av, err := attributevalue.MarshalMap(toCouponItem(c))
	if err != nil {
		return entities.Coupon{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#code)"),
		ExpressionAttributeNames: map[string]string{
			"#code": "code",
		},
	})
	if err != nil {
		return entities.Coupon{}, err
	}
	return c, nil
}

func (r *CouponDynamoRepository) GetByCode(ctx context.Context, code string) (entities.Coupon, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"code": &types.AttributeValueMemberS{Value: code},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Coupon{}, err
	}
	if len(out.Item) == 0 {
		return entities.Coupon{}, nil
	}

	var it couponItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Coupon{}, err
	}
	return fromCouponItem(it), nil
}

func (r *CouponDynamoRepository) List(ctx context.Context) ([]entities.Coupon, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	coupons := make([]entities.Coupon, 0, len(out.Items))
	for _, raw := range out.Items {
		var it couponItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		coupons = append(coupons, fromCouponItem(it))
	}
	return coupons, nil
}

func (r *CouponDynamoRepository) UpdateActiveByCode(ctx context.Context, code string, active bool) (entities.Coupon, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"code": &types.AttributeValueMemberS{Value: code},
		},
		ConditionExpression: aws.String("attribute_exists(#code)"),
		UpdateExpression:    aws.String("SET #active = :active, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":active":     &types.AttributeValueMemberBOOL{Value: active},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#code":       "code",
			"#active":     "active",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Coupon{}, nil
		}
		return entities.Coupon{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Coupon{}, nil
	}

	var it couponItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Coupon{}, err
	}
	return fromCouponItem(it), nil
}

func toCouponItem(c entities.Coupon) couponItem {
	return couponItem{
		Code:            c.Code,
		ID:              c.ID,
		Active:          c.Active,
		DiscountPercent: floatToString(c.DiscountPercent),
		CreatedAt:       c.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromCouponItem(it couponItem) entities.Coupon {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	pct, _ := strconv.ParseFloat(it.DiscountPercent, 64)
	return entities.Coupon{
		ID:              it.ID,
		Code:            it.Code,
		Active:          it.Active,
		DiscountPercent: pct,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}
