package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"fixsync/internal/domain/entities"
	"fixsync/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultJobsTableName = "jobs"

// dynamoAPI is the subset of *dynamodb.Client used by the repository.
type dynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

type jobItem struct {
	ID                 string           `dynamodbav:"id"`
	CustomerIdentity   string           `dynamodbav:"customer_identity"`
	CreatedAt          string           `dynamodbav:"created_at"`
	Status             string           `dynamodbav:"status"`
	Category           string           `dynamodbav:"category"`
	Priority           string           `dynamodbav:"priority"`
	Location           string           `dynamodbav:"location"`
	Description        string           `dynamodbav:"description"`
	AssignedTechnician string           `dynamodbav:"assigned_technician"`
	Photos             []attachmentItem `dynamodbav:"photos"`
	Messages           []messageItem    `dynamodbav:"messages"`
	Quotes             []quoteItem      `dynamodbav:"quotes"`
	Version            int64            `dynamodbav:"version"`
}

type attachmentItem struct {
	MediaRef       string `dynamodbav:"media_ref"`
	UploadedAt     string `dynamodbav:"uploaded_at"`
	UploadedByRole string `dynamodbav:"uploaded_by_role"`
}

type messageItem struct {
	Kind           string `dynamodbav:"kind"`
	AuthorRole     string `dynamodbav:"author_role"`
	AuthorIdentity string `dynamodbav:"author_identity"`
	Text           string `dynamodbav:"text"`
	Timestamp      string `dynamodbav:"timestamp"`
}

type quoteItem struct {
	ID          string `dynamodbav:"id"`
	Amount      string `dynamodbav:"amount"`
	Breakdown   string `dynamodbav:"breakdown"`
	Timeline    string `dynamodbav:"timeline"`
	Warranty    string `dynamodbav:"warranty"`
	SubmittedBy string `dynamodbav:"submitted_by"`
	CreatedAt   string `dynamodbav:"created_at"`
	Status      string `dynamodbav:"status"`
}

// JobDynamoRepository persists JobRecord entities in DynamoDB, one item per job
// with the full message/photo/quote history nested in it.
//
// Table requirements:
//   - PK: id (string)
//
// Writes are conditional on the stored version, which gives compare-and-swap
// semantics per job without a lock table.

type JobDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IJobRepository = (*JobDynamoRepository)(nil)

func NewJobDynamoRepository(ddb *dynamodb.Client) *JobDynamoRepository {
	return newJobDynamoRepository(ddb)
}

func newJobDynamoRepository(ddb dynamoAPI) *JobDynamoRepository {
	return &JobDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("JOBS_TABLE", defaultJobsTableName),
	}
}

func (r *JobDynamoRepository) Create(ctx context.Context, job entities.JobRecord) (entities.JobRecord, error) {
	job.Version = 1
	av, err := attributevalue.MarshalMap(toJobItem(job))
	if err != nil {
		return entities.JobRecord{}, err
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
		if isConditionFailed(err) {
			return entities.JobRecord{}, interfaces.ErrDuplicateID
		}
		return entities.JobRecord{}, err
	}
	return job, nil
}

func (r *JobDynamoRepository) GetByID(ctx context.Context, id string) (entities.JobRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.JobRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.JobRecord{}, nil
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.JobRecord{}, err
	}
	return fromJobItem(it), nil
}

func (r *JobDynamoRepository) Update(ctx context.Context, job entities.JobRecord) (entities.JobRecord, error) {
	expected := job.Version
	job.Version++
	av, err := attributevalue.MarshalMap(toJobItem(job))
	if err != nil {
		return entities.JobRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expected, 10)},
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.JobRecord{}, interfaces.ErrVersionConflict
		}
		return entities.JobRecord{}, err
	}
	return job, nil
}

func (r *JobDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func (r *JobDynamoRepository) ListAll(ctx context.Context) ([]entities.JobRecord, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	items := make([]entities.JobRecord, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it jobItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromJobItem(it))
		}
	}
	return items, nil
}

func isConditionFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

func toJobItem(j entities.JobRecord) jobItem {
	it := jobItem{
		ID:                 j.ID,
		CustomerIdentity:   j.CustomerIdentity,
		CreatedAt:          formatTime(j.CreatedAt),
		Status:             string(j.Status),
		Category:           string(j.Category),
		Priority:           string(j.Priority),
		Location:           j.Location,
		Description:        j.Description,
		AssignedTechnician: j.AssignedTechnician,
		Photos:             make([]attachmentItem, 0, len(j.Photos)),
		Messages:           make([]messageItem, 0, len(j.Messages)),
		Quotes:             make([]quoteItem, 0, len(j.Quotes)),
		Version:            j.Version,
	}
	for _, p := range j.Photos {
		it.Photos = append(it.Photos, attachmentItem{
			MediaRef:       p.MediaRef,
			UploadedAt:     formatTime(p.UploadedAt),
			UploadedByRole: string(p.UploadedByRole),
		})
	}
	for _, m := range j.Messages {
		it.Messages = append(it.Messages, messageItem{
			Kind:           string(m.Kind),
			AuthorRole:     string(m.AuthorRole),
			AuthorIdentity: m.AuthorIdentity,
			Text:           m.Text,
			Timestamp:      formatTime(m.Timestamp),
		})
	}
	for _, q := range j.Quotes {
		it.Quotes = append(it.Quotes, quoteItem{
			ID:          q.ID,
			Amount:      floatToString(q.Amount),
			Breakdown:   q.Breakdown,
			Timeline:    string(q.Timeline),
			Warranty:    string(q.Warranty),
			SubmittedBy: q.SubmittedBy,
			CreatedAt:   formatTime(q.CreatedAt),
			Status:      string(q.Status),
		})
	}
	return it
}

func fromJobItem(it jobItem) entities.JobRecord {
	j := entities.JobRecord{
		ID:                 it.ID,
		CustomerIdentity:   it.CustomerIdentity,
		CreatedAt:          parseTime(it.CreatedAt),
		Status:             entities.JobStatus(it.Status),
		Category:           entities.Category(it.Category),
		Priority:           entities.Priority(it.Priority),
		Location:           it.Location,
		Description:        it.Description,
		AssignedTechnician: it.AssignedTechnician,
		Photos:             make([]entities.Attachment, 0, len(it.Photos)),
		Messages:           make([]entities.Message, 0, len(it.Messages)),
		Quotes:             make([]entities.Quote, 0, len(it.Quotes)),
		Version:            it.Version,
	}
	for _, p := range it.Photos {
		j.Photos = append(j.Photos, entities.Attachment{
			MediaRef:       p.MediaRef,
			UploadedAt:     parseTime(p.UploadedAt),
			UploadedByRole: entities.Role(p.UploadedByRole),
		})
	}
	for _, m := range it.Messages {
		j.Messages = append(j.Messages, entities.Message{
			Kind:           entities.MessageKind(m.Kind),
			AuthorRole:     entities.Role(m.AuthorRole),
			AuthorIdentity: m.AuthorIdentity,
			Text:           m.Text,
			Timestamp:      parseTime(m.Timestamp),
		})
	}
	for _, q := range it.Quotes {
		amount, _ := strconv.ParseFloat(q.Amount, 64)
		j.Quotes = append(j.Quotes, entities.Quote{
			ID:          q.ID,
			Amount:      amount,
			Breakdown:   q.Breakdown,
			Timeline:    entities.Timeline(q.Timeline),
			Warranty:    entities.Warranty(q.Warranty),
			SubmittedBy: q.SubmittedBy,
			CreatedAt:   parseTime(q.CreatedAt),
			Status:      entities.QuoteStatus(q.Status),
		})
	}
	return j
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}
