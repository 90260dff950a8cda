package repository

import (
	"context"
	"time"

	"quotekit/internal/domain/entities"
	"quotekit/internal/domain/pricing"
	"quotekit/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCompaniesTableName = "companies"

type companySettingsItem struct {
	RangeLowPercent    string `dynamodbav:"range_low_percent"`
	RangeHighPercent   string `dynamodbav:"range_high_percent"`
	ValueThresholdLow  string `dynamodbav:"value_threshold_low"`
	ValueThresholdHigh string `dynamodbav:"value_threshold_high"`
	NotifyEmail        string `dynamodbav:"notify_email,omitempty"`
}

type companyItem struct {
	ID        string              `dynamodbav:"id"`
	Name      string              `dynamodbav:"name"`
	Email     string              `dynamodbav:"email"`
	Currency  string              `dynamodbav:"currency"`
	Locale    string              `dynamodbav:"locale"`
	Settings  companySettingsItem `dynamodbav:"settings"`
	CreatedAt string              `dynamodbav:"created_at"`
	UpdatedAt string              `dynamodbav:"updated_at"`
}

// CompanyDynamoRepository persists Company tenants in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type CompanyDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICompanyRepository = (*CompanyDynamoRepository)(nil)

func NewCompanyDynamoRepository(ddb *dynamodb.Client) *CompanyDynamoRepository {
	return &CompanyDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COMPANIES_TABLE", defaultCompaniesTableName),
	}
}

func (r *CompanyDynamoRepository) Create(ctx context.Context, c entities.Company) (entities.Company, error) {
	av, err := attributevalue.MarshalMap(toCompanyItem(c))
	if err != nil {
		return entities.Company{}, err
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
		return entities.Company{}, err
	}
	return c, nil
}

func (r *CompanyDynamoRepository) GetByID(ctx context.Context, id string) (entities.Company, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Company{}, err
	}
	if len(out.Item) == 0 {
		return entities.Company{}, nil
	}

	var it companyItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Company{}, err
	}
	return fromCompanyItem(it), nil
}

// Update rewrites the full item. Use cases always go through a read first, so
// a whole-item put with an existence condition is both simpler and safe here.
func (r *CompanyDynamoRepository) Update(ctx context.Context, c entities.Company) (entities.Company, error) {
	av, err := attributevalue.MarshalMap(toCompanyItem(c))
	if err != nil {
		return entities.Company{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Company{}, err
	}
	return c, nil
}

func toCompanyItem(c entities.Company) companyItem {
	return companyItem{
		ID:       c.ID,
		Name:     c.Name,
		Email:    c.Email,
		Currency: c.Currency,
		Locale:   string(c.Locale),
		Settings: companySettingsItem{
			RangeLowPercent:    floatToString(c.Settings.RangeLowPercent),
			RangeHighPercent:   floatToString(c.Settings.RangeHighPercent),
			ValueThresholdLow:  moneyToString(c.Settings.ValueThresholds.Low),
			ValueThresholdHigh: moneyToString(c.Settings.ValueThresholds.High),
			NotifyEmail:        c.Settings.NotifyEmail,
		},
		CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromCompanyItem(it companyItem) entities.Company {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Company{
		ID:       it.ID,
		Name:     it.Name,
		Email:    it.Email,
		Currency: it.Currency,
		Locale:   pricing.Locale(it.Locale),
		Settings: entities.CompanySettings{
			RangeLowPercent:  floatFromString(it.Settings.RangeLowPercent),
			RangeHighPercent: floatFromString(it.Settings.RangeHighPercent),
			ValueThresholds: pricing.ValueThresholds{
				Low:  moneyFromString(it.Settings.ValueThresholdLow),
				High: moneyFromString(it.Settings.ValueThresholdHigh),
			},
			NotifyEmail: it.Settings.NotifyEmail,
		},
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
