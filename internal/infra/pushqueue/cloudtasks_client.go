//go:build gcloud

package pushqueue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	cloudtasks "cloud.google.com/go/cloudtasks/apiv2"
	taskspb "cloud.google.com/go/cloudtasks/apiv2/cloudtaskspb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// CloudTasksClient registers push tasks with Cloud Tasks. Task names include
// the notification id, so a redelivered registration is rejected by the queue
// instead of producing a second push.
type CloudTasksClient struct {
	client     *cloudtasks.Client
	projectID  string
	locationID string
	queueID    string
	targetURL  string
}

type CloudTasksConfig struct {
	ProjectID  string
	LocationID string
	QueueID    string
	TargetURL  string

	// MaxRetries is accepted for config parity; retry policy lives on the
	// queue itself in Cloud Tasks.
	MaxRetries int
}

func NewCloudTasksClient(ctx context.Context, cfg CloudTasksConfig) (*CloudTasksClient, error) {
	client, err := cloudtasks.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloud tasks client: %w", err)
	}

	return &CloudTasksClient{
		client:     client,
		projectID:  cfg.ProjectID,
		locationID: cfg.LocationID,
		queueID:    cfg.QueueID,
		targetURL:  cfg.TargetURL,
	}, nil
}

func (c *CloudTasksClient) RegisterPush(ctx context.Context, task *PushTask) (*TaskResponse, error) {
	queuePath := fmt.Sprintf("projects/%s/locations/%s/queues/%s",
		c.projectID, c.locationID, c.queueID)

	payload, err := json.Marshal(task)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal push task: %w", err)
	}

	cloudTask := &taskspb.Task{
		Name: fmt.Sprintf("%s/tasks/%s", queuePath, task.NotificationID),
		MessageType: &taskspb.Task_HttpRequest{
			HttpRequest: &taskspb.HttpRequest{
				HttpMethod: taskspb.HttpMethod_POST,
				Url:        c.targetURL,
				Headers: map[string]string{
					"Content-Type": "application/json",
				},
				Body: payload,
			},
		},
		ScheduleTime: timestamppb.New(time.Now()),
	}

	created, err := c.client.CreateTask(ctx, &taskspb.CreateTaskRequest{
		Parent: queuePath,
		Task:   cloudTask,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create cloud task: %w", err)
	}

	slog.DebugContext(ctx, "cloud task created",
		slog.String("task_name", created.GetName()),
		slog.String("notification_id", task.NotificationID),
	)

	return &TaskResponse{
		Name:       created.GetName(),
		CreateTime: created.GetCreateTime().AsTime(),
	}, nil
}

// Close releases the underlying gRPC connection.
func (c *CloudTasksClient) Close() error {
	return c.client.Close()
}
