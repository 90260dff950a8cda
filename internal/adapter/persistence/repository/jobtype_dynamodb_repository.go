package repository

import (
	"context"
	"time"

	"quotekit/internal/domain/entities"
	"quotekit/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultJobTypesTableName = "job_types"
	jobTypesCompanyIDIndex   = "company_id-index"
)

type jobTypeItem struct {
	ID          string `dynamodbav:"id"`
	CompanyID   string `dynamodbav:"company_id"`
	Name        string `dynamodbav:"name"`
	Description string `dynamodbav:"description,omitempty"`
	BasePrice   string `dynamodbav:"base_price,omitempty"`
	Currency    string `dynamodbav:"currency"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// JobTypeDynamoRepository persists JobType entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: company_id-index (PK: company_id)
//
// An absent base_price attribute means the job type is an unpriced draft;
// zero is a valid price and is stored as "0".

type JobTypeDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IJobTypeRepository = (*JobTypeDynamoRepository)(nil)

func NewJobTypeDynamoRepository(ddb *dynamodb.Client) *JobTypeDynamoRepository {
	return &JobTypeDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("JOB_TYPES_TABLE", defaultJobTypesTableName),
	}
}

func (r *JobTypeDynamoRepository) Create(ctx context.Context, j entities.JobType) (entities.JobType, error) {
	av, err := attributevalue.MarshalMap(toJobTypeItem(j))
	if err != nil {
		return entities.JobType{}, err
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
		return entities.JobType{}, err
	}
	return j, nil
}

func (r *JobTypeDynamoRepository) GetByID(ctx context.Context, id string) (entities.JobType, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.JobType{}, err
	}
	if len(out.Item) == 0 {
		return entities.JobType{}, nil
	}

	var it jobTypeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.JobType{}, err
	}
	return fromJobTypeItem(it), nil
}

func (r *JobTypeDynamoRepository) ListByCompanyID(ctx context.Context, companyID string) ([]entities.JobType, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(jobTypesCompanyIDIndex),
		KeyConditionExpression: aws.String("company_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: companyID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.JobType, 0, len(out.Items))
	for _, raw := range out.Items {
		var it jobTypeItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromJobTypeItem(it))
	}
	return items, nil
}

func (r *JobTypeDynamoRepository) Update(ctx context.Context, j entities.JobType) (entities.JobType, error) {
	av, err := attributevalue.MarshalMap(toJobTypeItem(j))
	if err != nil {
		return entities.JobType{}, err
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
		return entities.JobType{}, err
	}
	return j, nil
}

func (r *JobTypeDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toJobTypeItem(j entities.JobType) jobTypeItem {
	it := jobTypeItem{
		ID:          j.ID,
		CompanyID:   j.CompanyID,
		Name:        j.Name,
		Description: j.Description,
		Currency:    j.Currency,
		CreatedAt:   j.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   j.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if j.BasePrice != nil {
		it.BasePrice = moneyToString(*j.BasePrice)
	}
	return it
}

func fromJobTypeItem(it jobTypeItem) entities.JobType {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	j := entities.JobType{
		ID:          it.ID,
		CompanyID:   it.CompanyID,
		Name:        it.Name,
		Description: it.Description,
		Currency:    it.Currency,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
	if it.BasePrice != "" {
		price := moneyFromString(it.BasePrice)
		j.BasePrice = &price
	}
	return j
}
