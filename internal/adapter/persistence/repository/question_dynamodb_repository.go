package repository

import (
	"context"
	"sort"
	"time"

	"quotekit/internal/domain/entities"
	"quotekit/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuestionsTableName = "questions"
	questionsJobTypeIDIndex   = "job_type_id-index"
)

type answerOptionItem struct {
	ID            string `dynamodbav:"id"`
	Label         string `dynamodbav:"label"`
	ModifierKind  string `dynamodbav:"modifier_kind"`
	ModifierValue string `dynamodbav:"modifier_value"`
	Position      int    `dynamodbav:"position"`
}

type questionItem struct {
	ID        string             `dynamodbav:"id"`
	JobTypeID string             `dynamodbav:"job_type_id"`
	CompanyID string             `dynamodbav:"company_id"`
	Text      string             `dynamodbav:"text"`
	Type      string             `dynamodbav:"type"`
	Position  int                `dynamodbav:"position"`
	Unit      string             `dynamodbav:"unit,omitempty"`
	UnitRate  string             `dynamodbav:"unit_rate,omitempty"`
	Options   []answerOptionItem `dynamodbav:"options,omitempty"`
	CreatedAt string             `dynamodbav:"created_at"`
	UpdatedAt string             `dynamodbav:"updated_at"`
}

// QuestionDynamoRepository persists estimator questions in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: job_type_id-index (PK: job_type_id)
//
// The GSI has no sort key; ListByJobTypeID sorts by position in memory. Forms
// are small enough (tens of questions) that a projected sort key isn't worth
// the extra index shape.

type QuestionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuestionRepository = (*QuestionDynamoRepository)(nil)

func NewQuestionDynamoRepository(ddb *dynamodb.Client) *QuestionDynamoRepository {
	return &QuestionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUESTIONS_TABLE", defaultQuestionsTableName),
	}
}

func (r *QuestionDynamoRepository) Create(ctx context.Context, q entities.Question) (entities.Question, error) {
	av, err := attributevalue.MarshalMap(toQuestionItem(q))
	if err != nil {
		return entities.Question{}, err
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
		return entities.Question{}, err
	}
	return q, nil
}

func (r *QuestionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Question, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Question{}, err
	}
	if len(out.Item) == 0 {
		return entities.Question{}, nil
	}

	var it questionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Question{}, err
	}
	return fromQuestionItem(it), nil
}

func (r *QuestionDynamoRepository) ListByJobTypeID(ctx context.Context, jobTypeID string) ([]entities.Question, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(questionsJobTypeIDIndex),
		KeyConditionExpression: aws.String("job_type_id = :jid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":jid": &types.AttributeValueMemberS{Value: jobTypeID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Question, 0, len(out.Items))
	for _, raw := range out.Items {
		var it questionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromQuestionItem(it))
	}

	// Display order is also modifier application order.
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Position < items[j].Position
	})
	return items, nil
}

func (r *QuestionDynamoRepository) Update(ctx context.Context, q entities.Question) (entities.Question, error) {
	av, err := attributevalue.MarshalMap(toQuestionItem(q))
	if err != nil {
		return entities.Question{}, err
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
		return entities.Question{}, err
	}
	return q, nil
}

func (r *QuestionDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toQuestionItem(q entities.Question) questionItem {
	it := questionItem{
		ID:        q.ID,
		JobTypeID: q.JobTypeID,
		CompanyID: q.CompanyID,
		Text:      q.Text,
		Type:      string(q.Type),
		Position:  q.Position,
		Unit:      q.Unit,
		CreatedAt: q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if q.UnitRate != nil {
		it.UnitRate = floatToString(*q.UnitRate)
	}
	for _, opt := range q.Options {
		it.Options = append(it.Options, answerOptionItem{
			ID:            opt.ID,
			Label:         opt.Label,
			ModifierKind:  opt.ModifierKind,
			ModifierValue: floatToString(opt.ModifierValue),
			Position:      opt.Position,
		})
	}
	return it
}

func fromQuestionItem(it questionItem) entities.Question {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	q := entities.Question{
		ID:        it.ID,
		JobTypeID: it.JobTypeID,
		CompanyID: it.CompanyID,
		Text:      it.Text,
		Type:      entities.QuestionType(it.Type),
		Position:  it.Position,
		Unit:      it.Unit,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
	if it.UnitRate != "" {
		rate := floatFromString(it.UnitRate)
		q.UnitRate = &rate
	}
	for _, opt := range it.Options {
		q.Options = append(q.Options, entities.AnswerOption{
			ID:            opt.ID,
			Label:         opt.Label,
			ModifierKind:  opt.ModifierKind,
			ModifierValue: floatFromString(opt.ModifierValue),
			Position:      opt.Position,
		})
	}
	return q
}
