package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"quotekit/internal/domain/entities"
	"quotekit/internal/domain/pricing"
	"quotekit/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultLeadsTableName = "leads"
	leadsCompanyIDIndex   = "company_id-index"
)

type leadResponseItem struct {
	QuestionID      string   `dynamodbav:"question_id"`
	AnswerOptionIDs []string `dynamodbav:"answer_option_ids,omitempty"`
	RawAnswer       string   `dynamodbav:"raw_answer,omitempty"`
}

type leadItem struct {
	ID                 string             `dynamodbav:"id"`
	CompanyID          string             `dynamodbav:"company_id"`
	JobTypeID          string             `dynamodbav:"job_type_id"`
	Name               string             `dynamodbav:"name"`
	Email              string             `dynamodbav:"email"`
	Phone              string             `dynamodbav:"phone,omitempty"`
	Responses          []leadResponseItem `dynamodbav:"responses,omitempty"`
	EstimatedPriceLow  string             `dynamodbav:"estimated_price_low"`
	EstimatedPriceHigh string             `dynamodbav:"estimated_price_high"`
	Currency           string             `dynamodbav:"currency"`
	Value              string             `dynamodbav:"value"`
	Status             string             `dynamodbav:"status"`
	CreatedAt          string             `dynamodbav:"created_at"`
	UpdatedAt          string             `dynamodbav:"updated_at"`
}

// LeadDynamoRepository persists CRM leads in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: company_id-index (PK: company_id)

type LeadDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILeadRepository = (*LeadDynamoRepository)(nil)

func NewLeadDynamoRepository(ddb *dynamodb.Client) *LeadDynamoRepository {
	return &LeadDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LEADS_TABLE", defaultLeadsTableName),
	}
}

func (r *LeadDynamoRepository) Create(ctx context.Context, l entities.Lead) (entities.Lead, error) {
	av, err := attributevalue.MarshalMap(toLeadItem(l))
	if err != nil {
		return entities.Lead{}, err
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
		return entities.Lead{}, err
	}
	return l, nil
}

func (r *LeadDynamoRepository) GetByID(ctx context.Context, id string) (entities.Lead, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Lead{}, err
	}
	if len(out.Item) == 0 {
		return entities.Lead{}, nil
	}

	var it leadItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Lead{}, err
	}
	return fromLeadItem(it), nil
}

// ListByCompanyID returns newest leads first, which is the order the Kanban
// board renders each column in.
func (r *LeadDynamoRepository) ListByCompanyID(ctx context.Context, companyID string) ([]entities.Lead, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(leadsCompanyIDIndex),
		KeyConditionExpression: aws.String("company_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: companyID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Lead, 0, len(out.Items))
	for _, raw := range out.Items {
		var it leadItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromLeadItem(it))
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (r *LeadDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.LeadStatus) (entities.Lead, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Lead{}, nil
		}
		return entities.Lead{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Lead{}, nil
	}

	var it leadItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Lead{}, err
	}
	return fromLeadItem(it), nil
}

func toLeadItem(l entities.Lead) leadItem {
	it := leadItem{
		ID:                 l.ID,
		CompanyID:          l.CompanyID,
		JobTypeID:          l.JobTypeID,
		Name:               l.Name,
		Email:              l.Email,
		Phone:              l.Phone,
		EstimatedPriceLow:  moneyToString(l.EstimatedPriceLow),
		EstimatedPriceHigh: moneyToString(l.EstimatedPriceHigh),
		Currency:           l.Currency,
		Value:              string(l.Value),
		Status:             string(l.Status),
		CreatedAt:          l.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:          l.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	for _, resp := range l.Responses {
		it.Responses = append(it.Responses, leadResponseItem{
			QuestionID:      resp.QuestionID,
			AnswerOptionIDs: resp.AnswerOptionIDs,
			RawAnswer:       resp.RawAnswer,
		})
	}
	return it
}

func fromLeadItem(it leadItem) entities.Lead {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	l := entities.Lead{
		ID:                 it.ID,
		CompanyID:          it.CompanyID,
		JobTypeID:          it.JobTypeID,
		Name:               it.Name,
		Email:              it.Email,
		Phone:              it.Phone,
		EstimatedPriceLow:  moneyFromString(it.EstimatedPriceLow),
		EstimatedPriceHigh: moneyFromString(it.EstimatedPriceHigh),
		Currency:           it.Currency,
		Value:              pricing.LeadValue(it.Value),
		Status:             entities.LeadStatus(it.Status),
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
	}
	for _, resp := range it.Responses {
		l.Responses = append(l.Responses, entities.LeadResponse{
			QuestionID:      resp.QuestionID,
			AnswerOptionIDs: resp.AnswerOptionIDs,
			RawAnswer:       resp.RawAnswer,
		})
	}
	return l
}
