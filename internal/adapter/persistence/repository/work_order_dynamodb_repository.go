package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"mass_oss/internal/domain/entities"
	"mass_oss/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultWorkOrdersTableName = "work_orders"
	defaultRemoteTimeout       = 5 * time.Second
	maxCreateAttempts          = 5
)

// DynamoDBAPI is the subset of the DynamoDB client the repository calls.
type DynamoDBAPI interface {
	dynamodb.QueryAPIClient
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

type workOrderItem struct {
	OrgID         string   `dynamodbav:"org_id"`
	ID            string   `dynamodbav:"id"`
	Status        string   `dynamodbav:"status"`
	VehicleMake   string   `dynamodbav:"vehicle_make"`
	VehicleModel  string   `dynamodbav:"vehicle_model"`
	VehicleYear   int      `dynamodbav:"vehicle_year"`
	VehiclePlate  string   `dynamodbav:"vehicle_plate"`
	CustomerName  string   `dynamodbav:"customer_name"`
	CustomerPhone string   `dynamodbav:"customer_phone"`
	CheckinDate   string   `dynamodbav:"checkin_date"`
	Services      []string `dynamodbav:"services"`
	AssignedTech  string   `dynamodbav:"assigned_tech"`
	Priority      string   `dynamodbav:"priority"`
	Estimate      string   `dynamodbav:"estimate,omitempty"`
	CreatedAt     string   `dynamodbav:"created_at"`
	UpdatedAt     string   `dynamodbav:"updated_at"`
}

// WorkOrderDynamoRepository persists work orders in DynamoDB.
//
// Table requirements:
//   - PK: org_id (string)
//   - SK: id (string)
//
// Every call runs under its own timeout so a slow table surfaces as an error
// instead of a hung request.

type WorkOrderDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
	timeout   time.Duration
	now       func() time.Time
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderDynamoRepository)(nil)

func NewWorkOrderDynamoRepository(ddb DynamoDBAPI, tableName string, timeout time.Duration) *WorkOrderDynamoRepository {
	if tableName == "" {
		tableName = DefaultWorkOrdersTableName
	}
	if timeout <= 0 {
		timeout = defaultRemoteTimeout
	}
	return &WorkOrderDynamoRepository{ddb: ddb, tableName: tableName, timeout: timeout, now: time.Now}
}

// List returns the org's orders newest first.
func (r *WorkOrderDynamoRepository) List(ctx context.Context, orgID string) ([]entities.WorkOrder, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#org_id = :org_id"),
		ExpressionAttributeNames: map[string]string{
			"#org_id": "org_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":org_id": &types.AttributeValueMemberS{Value: orgID},
		},
	})

	orders := make([]entities.WorkOrder, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []workOrderItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			orders = append(orders, fromWorkOrderItem(it))
		}
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (r *WorkOrderDynamoRepository) GetByID(ctx context.Context, orgID, id string) (entities.WorkOrder, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            workOrderKey(orgID, id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.WorkOrder{}, nil
	}

	var it workOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.WorkOrder{}, err
	}
	return fromWorkOrderItem(it), nil
}

// Create writes wo with a conditional put. When the caller left ID empty a
// display id is synthesized and bumped on collision.
func (r *WorkOrderDynamoRepository) Create(ctx context.Context, wo entities.WorkOrder) (entities.WorkOrder, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	synthesize := wo.ID == ""
	now := r.now()
	for attempt := 0; attempt < maxCreateAttempts; attempt++ {
		if synthesize {
			wo.ID = entities.SynthesizeWorkOrderID(now, attempt)
		}
		av, err := attributevalue.MarshalMap(toWorkOrderItem(wo))
		if err != nil {
			return entities.WorkOrder{}, err
		}

		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		})
		if err == nil {
			return wo, nil
		}
		if !isConditionFailed(err) {
			return entities.WorkOrder{}, err
		}
		if !synthesize {
			return entities.WorkOrder{}, ErrWorkOrderExists
		}
		log.WithFields(log.Fields{"org_id": wo.OrgID, "id": wo.ID}).Warn("[workorder][dynamodb] id collision, retrying")
	}
	return entities.WorkOrder{}, ErrWorkOrderExists
}

func (r *WorkOrderDynamoRepository) Update(ctx context.Context, orgID, id string, patch entities.WorkOrderPatch) (entities.WorkOrder, error) {
	return r.update(ctx, orgID, id, "", func(now string) (string, map[string]types.AttributeValue, map[string]string, error) {
		return buildPatchUpdate(patch, now)
	})
}

// UpdateStatus writes to only while the stored status is still from. A
// failed condition on an existing item is reported as ErrStatusChanged.
func (r *WorkOrderDynamoRepository) UpdateStatus(ctx context.Context, orgID, id string, from, to entities.WorkOrderStatus) (entities.WorkOrder, error) {
	return r.update(ctx, orgID, id, "#status = :from", func(now string) (string, map[string]types.AttributeValue, map[string]string, error) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(to)},
			":from":       &types.AttributeValueMemberS{Value: string(from)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names, nil
	})
}

func (r *WorkOrderDynamoRepository) Delete(ctx context.Context, orgID, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 workOrderKey(orgID, id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *WorkOrderDynamoRepository) update(
	ctx context.Context,
	orgID, id string,
	extraCond string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string, err error),
) (entities.WorkOrder, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	now := r.now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names, err := build(now)
	if err != nil {
		return entities.WorkOrder{}, err
	}

	cond := "attribute_exists(#id)"
	if extraCond != "" {
		cond += " AND " + extraCond
	}
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                           aws.String(r.tableName),
		Key:                                 workOrderKey(orgID, id),
		ConditionExpression:                 aws.String(cond),
		UpdateExpression:                    aws.String(updateExpr),
		ExpressionAttributeValues:           values,
		ExpressionAttributeNames:            mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			if extraCond != "" && len(cfe.Item) > 0 {
				return entities.WorkOrder{}, entities.ErrStatusChanged
			}
			return entities.WorkOrder{}, nil
		}
		return entities.WorkOrder{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.WorkOrder{}, nil
	}
	var it workOrderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.WorkOrder{}, err
	}
	return fromWorkOrderItem(it), nil
}

// buildPatchUpdate turns the non-nil fields of p into a SET expression.
// updated_at is always written.
func buildPatchUpdate(p entities.WorkOrderPatch, now string) (string, map[string]types.AttributeValue, map[string]string, error) {
	set := newSetBuilder()
	if p.Vehicle != nil {
		set.str("vehicle_make", p.Vehicle.Make)
		set.str("vehicle_model", p.Vehicle.Model)
		set.num("vehicle_year", strconv.Itoa(p.Vehicle.Year))
		set.str("vehicle_plate", p.Vehicle.Plate)
	}
	if p.Customer != nil {
		set.str("customer_name", p.Customer.Name)
		set.str("customer_phone", p.Customer.Phone)
	}
	if p.CheckinDate != nil {
		set.str("checkin_date", *p.CheckinDate)
	}
	if p.Services != nil {
		av, err := attributevalue.Marshal(p.Services)
		if err != nil {
			return "", nil, nil, err
		}
		set.add("services", av)
	}
	if p.AssignedTech != nil {
		set.str("assigned_tech", *p.AssignedTech)
	}
	if p.Priority != nil {
		set.str("priority", string(*p.Priority))
	}
	if p.Estimate != nil {
		set.str("estimate", floatToString(*p.Estimate))
	}
	set.str("updated_at", now)
	return set.expr(), set.values, set.names, nil
}

func workOrderKey(orgID, id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"org_id": &types.AttributeValueMemberS{Value: orgID},
		"id":     &types.AttributeValueMemberS{Value: id},
	}
}

func isConditionFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

func toWorkOrderItem(o entities.WorkOrder) workOrderItem {
	it := workOrderItem{
		OrgID:         o.OrgID,
		ID:            o.ID,
		Status:        string(o.Status),
		VehicleMake:   o.Vehicle.Make,
		VehicleModel:  o.Vehicle.Model,
		VehicleYear:   o.Vehicle.Year,
		VehiclePlate:  o.Vehicle.Plate,
		CustomerName:  o.Customer.Name,
		CustomerPhone: o.Customer.Phone,
		CheckinDate:   o.CheckinDate,
		Services:      append([]string{}, o.Services...),
		AssignedTech:  o.AssignedTech,
		Priority:      string(o.Priority),
		CreatedAt:     o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if o.Estimate != nil {
		it.Estimate = floatToString(*o.Estimate)
	}
	return it
}

func fromWorkOrderItem(it workOrderItem) entities.WorkOrder {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	o := entities.WorkOrder{
		ID:     it.ID,
		OrgID:  it.OrgID,
		Status: entities.WorkOrderStatus(it.Status),
		Vehicle: entities.VehicleSnapshot{
			Make:  it.VehicleMake,
			Model: it.VehicleModel,
			Year:  it.VehicleYear,
			Plate: it.VehiclePlate,
		},
		Customer: entities.CustomerSnapshot{
			Name:  it.CustomerName,
			Phone: it.CustomerPhone,
		},
		CheckinDate:  it.CheckinDate,
		Services:     append([]string{}, it.Services...),
		AssignedTech: it.AssignedTech,
		Priority:     entities.Priority(it.Priority),
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
	if it.Estimate != "" {
		if v, err := strconv.ParseFloat(it.Estimate, 64); err == nil {
			o.Estimate = &v
		}
	}
	return o
}
