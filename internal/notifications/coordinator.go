package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/playmakerhq/playmaker/backend/internal/models"
	"go.uber.org/zap"
)

// Store is the notification persistence the coordinator writes through.
type Store interface {
	CreateIfAbsent(notification *models.Notification) (bool, error)
}

// SchoolSource supplies school records for message templates.
type SchoolSource interface {
	GetSchoolByID(id uint) (*models.School, error)
}

// Coordinator is the single entry point for notification-producing events.
// Every method hands the whole fan-out (recipient resolution, message
// rendering, per-recipient writes) to the dispatcher and returns immediately.
// Nothing here ever returns an error to the producer: failures terminate at
// the log.
type Coordinator struct {
	dispatcher Dispatcher
	resolver   *RecipientResolver
	identity   *IdentityResolver
	store      Store
	schools    SchoolSource
	log        *zap.Logger
}

// NewCoordinator creates a new Coordinator
func NewCoordinator(dispatcher Dispatcher, resolver *RecipientResolver, identity *IdentityResolver, store Store, schools SchoolSource, log *zap.Logger) *Coordinator {
	return &Coordinator{
		dispatcher: dispatcher,
		resolver:   resolver,
		identity:   identity,
		store:      store,
		schools:    schools,
		log:        log,
	}
}

// draft is a fully-formed notification minus the recipient.
type draft struct {
	Type          string
	Title         string
	Message       string
	EntityType    string
	EntityID      string
	RelatedUserID *uint
	Metadata      map[string]any
}

// PostCreated notifies the current followers of the posting student.
func (c *Coordinator) PostCreated(actorID uint, postID string) {
	c.dispatcher.Dispatch(func(ctx context.Context) {
		recipients, err := c.resolver.FollowersOf(actorID, actorID)
		if err != nil {
			c.log.Error("resolve post followers", zap.Uint("actor_id", actorID), zap.Error(err))
			return
		}
		actor := c.identity.Resolve(actorID)
		c.fanOut(ctx, recipients, draft{
			Type:          models.NotificationFollowingPosted,
			Title:         "New post",
			Message:       fmt.Sprintf("%s shared a new post", actor.Name),
			EntityType:    models.EntityPost,
			EntityID:      postID,
			RelatedUserID: &actorID,
			Metadata:      map[string]any{"post_id": postID},
		})
	})
}

// PostLiked notifies the post owner. Liking your own post notifies nobody,
// and re-liking after an unlike is suppressed by the dedup key.
func (c *Coordinator) PostLiked(actorID, ownerID uint, postID string) {
	c.dispatcher.Dispatch(func(ctx context.Context) {
		recipients := c.resolver.ExplicitSet(actorID, ownerID)
		actor := c.identity.Resolve(actorID)
		c.fanOut(ctx, recipients, draft{
			Type:          models.NotificationPostLike,
			Title:         "New like",
			Message:       fmt.Sprintf("%s liked your post", actor.Name),
			EntityType:    models.EntityPost,
			EntityID:      postID,
			RelatedUserID: &actorID,
			Metadata:      map[string]any{"post_id": postID},
		})
	})
}

// PostCommented notifies the post owner with a short excerpt.
func (c *Coordinator) PostCommented(actorID, ownerID uint, postID, excerpt string) {
	c.dispatcher.Dispatch(func(ctx context.Context) {
		recipients := c.resolver.ExplicitSet(actorID, ownerID)
		actor := c.identity.Resolve(actorID)
		if len(excerpt) > 80 {
			excerpt = excerpt[:77] + "..."
		}
		c.fanOut(ctx, recipients, draft{
			Type:          models.NotificationPostComment,
			Title:         "New comment",
			Message:       fmt.Sprintf("%s commented on your post: %q", actor.Name, excerpt),
			EntityType:    models.EntityPost,
			EntityID:      postID,
			RelatedUserID: &actorID,
			Metadata:      map[string]any{"post_id": postID},
		})
	})
}

// FollowerAdded notifies the followed student.
func (c *Coordinator) FollowerAdded(actorID, studentID uint) {
	c.dispatcher.Dispatch(func(ctx context.Context) {
		recipients := c.resolver.ExplicitSet(actorID, studentID)
		actor := c.identity.Resolve(actorID)
		c.fanOut(ctx, recipients, draft{
			Type:          models.NotificationNewFollower,
			Title:         "New follower",
			Message:       fmt.Sprintf("%s started following you", actor.Name),
			EntityType:    models.EntityUser,
			EntityID:      strconv.FormatUint(uint64(actorID), 10),
			RelatedUserID: &actorID,
		})
	})
}

// SchoolPaymentRecorded notifies the school's admins and the system admins.
func (c *Coordinator) SchoolPaymentRecorded(actorID, schoolID uint, paymentID, kind string, amount float64) {
	c.dispatcher.Dispatch(func(ctx context.Context) {
		recipients, err := c.resolver.UnionOfRoles(actorID,
			RoleQuery{Role: models.RoleSchoolAdmin, SchoolID: &schoolID},
			RoleQuery{Role: models.RoleSystemAdmin},
		)
		if err != nil {
			c.log.Error("resolve payment recipients", zap.Uint("school_id", schoolID), zap.Error(err))
			return
		}

		schoolName := "a school"
		if school, err := c.schools.GetSchoolByID(schoolID); err == nil && school.Name != "" {
			schoolName = school.Name
		}
		c.fanOut(ctx, recipients, draft{
			Type:          models.NotificationSchoolPayment,
			Title:         "Payment recorded",
			Message:       fmt.Sprintf("A %s payment of $%.2f was recorded for %s", kind, amount, schoolName),
			EntityType:    models.EntityPayment,
			EntityID:      paymentID,
			RelatedUserID: &actorID,
			Metadata:      map[string]any{"school_id": schoolID, "payment_id": paymentID},
		})
	})
}

// FormSubmitted notifies the system admins and the scout admins.
func (c *Coordinator) FormSubmitted(actorID uint, submissionID string) {
	c.dispatcher.Dispatch(func(ctx context.Context) {
		recipients, err := c.resolver.UnionOfRoles(actorID,
			RoleQuery{Role: models.RoleSystemAdmin},
			RoleQuery{Role: models.RoleScoutAdmin},
		)
		if err != nil {
			c.log.Error("resolve submission recipients", zap.String("submission_id", submissionID), zap.Error(err))
			return
		}
		actor := c.identity.Resolve(actorID)
		c.fanOut(ctx, recipients, draft{
			Type:          models.NotificationFormSubmitted,
			Title:         "New evaluation form",
			Message:       fmt.Sprintf("%s submitted an evaluation form", actor.Name),
			EntityType:    models.EntitySubmission,
			EntityID:      submissionID,
			RelatedUserID: &actorID,
			Metadata:      map[string]any{"submission_id": submissionID},
		})
	})
}

// SubmissionReviewed notifies the student whose evaluation was reviewed.
func (c *Coordinator) SubmissionReviewed(reviewerID, studentID uint, submissionID, status string) {
	c.dispatcher.Dispatch(func(ctx context.Context) {
		recipients := c.resolver.ExplicitSet(reviewerID, studentID)
		reviewer := c.identity.Resolve(reviewerID)
		c.fanOut(ctx, recipients, draft{
			Type:          models.NotificationSubmissionReviewed,
			Title:         "Evaluation reviewed",
			Message:       fmt.Sprintf("%s marked your evaluation as %s", reviewer.Name, status),
			EntityType:    models.EntitySubmission,
			EntityID:      submissionID,
			RelatedUserID: &reviewerID,
			Metadata:      map[string]any{"submission_id": submissionID, "status": status},
		})
	})
}

// ScoutAssigned notifies the assigned scout and the student under review.
func (c *Coordinator) ScoutAssigned(assignerID, scoutID, studentID uint, submissionID string) {
	c.dispatcher.Dispatch(func(ctx context.Context) {
		recipients := c.resolver.ExplicitSet(assignerID, scoutID, studentID)
		scout := c.identity.Resolve(scoutID)
		c.fanOut(ctx, recipients, draft{
			Type:          models.NotificationScoutAssigned,
			Title:         "Scout assigned",
			Message:       fmt.Sprintf("%s was assigned to an evaluation", scout.Name),
			EntityType:    models.EntitySubmission,
			EntityID:      submissionID,
			RelatedUserID: &scoutID,
			Metadata:      map[string]any{"submission_id": submissionID, "scout_id": scoutID},
		})
	})
}

// fanOut writes one row per recipient. A single recipient's failure is logged
// and does not stop the rest.
func (c *Coordinator) fanOut(_ context.Context, recipients []Recipient, d draft) {
	if len(recipients) == 0 {
		c.log.Debug("empty fan-out", zap.String("type", d.Type), zap.String("entity_id", d.EntityID))
		return
	}

	metadata := ""
	if d.Metadata != nil {
		if raw, err := json.Marshal(d.Metadata); err == nil {
			metadata = string(raw)
		}
	}

	for _, rec := range recipients {
		notification := &models.Notification{
			UserID:        rec.UserID,
			Type:          d.Type,
			Title:         d.Title,
			Message:       d.Message,
			EntityType:    d.EntityType,
			EntityID:      d.EntityID,
			RelatedUserID: d.RelatedUserID,
			Metadata:      metadata,
		}
		if _, err := c.store.CreateIfAbsent(notification); err != nil {
			c.log.Error("write notification",
				zap.Uint("user_id", rec.UserID),
				zap.String("type", d.Type),
				zap.String("entity_id", d.EntityID),
				zap.Error(err),
			)
		}
	}
}
