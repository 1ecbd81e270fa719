package betting

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/betabeer/internal/events"
	"github.com/KirkDiggler/betabeer/internal/ledger"
	"github.com/KirkDiggler/betabeer/internal/models"
	groupRepo "github.com/KirkDiggler/betabeer/internal/repositories/group"
	log "github.com/sirupsen/logrus"
)

// CreateGroup creates a group with the owner as its only member
func (s *service) CreateGroup(ctx context.Context, input *CreateGroupInput) (*CreateGroupOutput, error) {
	if input == nil {
		return nil, invalid("input is required")
	}
	if input.OwnerID == "" {
		return nil, invalid("owner is required")
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, invalid("group name is required")
	}

	groupID := input.GroupID
	if groupID == "" {
		groupID = s.uuidGenerator.NewUUID()
	}

	group := &models.Group{
		ID:        groupID,
		Name:      name,
		CreatedBy: input.OwnerID,
		CreatedAt: s.clock.Now(),
	}
	group.AddMember(input.OwnerID, input.OwnerName)

	out, err := s.groupRepo.CreateGroup(ctx, &groupRepo.CreateGroupInput{Group: group})
	if err != nil {
		return nil, mapRepoError(err, groupID)
	}

	event := s.newEvent(events.EventTypeGroupCreated, input.OwnerID, "")
	event.GroupID = groupID
	event.Version = out.Group.Version
	s.publish(ctx, event)

	s.logger.WithFields(log.Fields{
		"groupID": groupID,
		"ownerID": input.OwnerID,
	}).Info("Group created")

	return &CreateGroupOutput{Group: out.Group}, nil
}

// GetGroup returns a group by ID
func (s *service) GetGroup(ctx context.Context, input *GetGroupInput) (*GetGroupOutput, error) {
	if input == nil {
		return nil, invalid("input is required")
	}

	group, err := s.loadGroup(ctx, input.GroupID)
	if err != nil {
		return nil, err
	}
	return &GetGroupOutput{Group: group}, nil
}

// DeleteGroup removes the group, its balances and its member indexes
func (s *service) DeleteGroup(ctx context.Context, input *DeleteGroupInput) (*DeleteGroupOutput, error) {
	if input == nil {
		return nil, invalid("input is required")
	}
	if input.UserID == "" {
		return nil, invalid("user is required")
	}

	group, err := s.loadGroup(ctx, input.GroupID)
	if err != nil {
		return nil, err
	}
	if input.UserID != group.CreatedBy {
		return nil, fmt.Errorf("%w: only the owner can delete group %s", ledger.ErrNotPermitted, group.ID)
	}

	if err := s.groupRepo.DeleteGroup(ctx, &groupRepo.DeleteGroupInput{GroupID: group.ID}); err != nil {
		return nil, mapRepoError(err, group.ID)
	}

	event := s.newEvent(events.EventTypeGroupDeleted, input.UserID, "")
	event.GroupID = group.ID
	event.Version = group.Version
	s.publish(ctx, event)

	s.logger.WithField("groupID", group.ID).Info("Group deleted")

	return &DeleteGroupOutput{}, nil
}

// AddMember adds a user to a group. Adding an existing member only refreshes
// their display name.
func (s *service) AddMember(ctx context.Context, input *AddMemberInput) (*AddMemberOutput, error) {
	if input == nil {
		return nil, invalid("input is required")
	}
	if input.UserID == "" {
		return nil, invalid("user is required")
	}

	before, err := s.loadGroup(ctx, input.GroupID)
	if err != nil {
		return nil, err
	}

	// Joining is the one change a non-member may make
	var added bool
	group, _, err := s.commitChange(ctx, before, func(group *models.Group) (*groupChange, error) {
		previousName, named := group.MemberNames[input.UserID]
		added = group.AddMember(input.UserID, input.Username)
		if !added && (input.Username == "" || (named && previousName == input.Username)) {
			return nil, nil
		}

		change := &groupChange{}
		if added {
			change.Event = s.newEvent(events.EventTypeMemberAdded, input.UserID, "")
		}
		return change, nil
	})
	if err != nil {
		return nil, err
	}

	return &AddMemberOutput{Group: group, Added: added}, nil
}

// RemoveMember removes a member. The owner can remove anyone but themselves;
// other members can only remove themselves. Balances and history are kept.
func (s *service) RemoveMember(ctx context.Context, input *RemoveMemberInput) (*RemoveMemberOutput, error) {
	if input == nil {
		return nil, invalid("input is required")
	}
	if input.UserID == "" || input.ActorID == "" {
		return nil, invalid("actor and user are required")
	}

	group, _, err := s.updateGroup(ctx, input.GroupID, input.ActorID, func(group *models.Group) (*groupChange, error) {
		if input.UserID == group.CreatedBy {
			return nil, fmt.Errorf("%w: the owner cannot leave group %s", ledger.ErrNotPermitted, group.ID)
		}
		if input.ActorID != input.UserID && input.ActorID != group.CreatedBy {
			return nil, fmt.Errorf("%w: only the owner can remove other members", ledger.ErrNotPermitted)
		}
		if !group.RemoveMember(input.UserID) {
			return nil, fmt.Errorf("%w: %s in group %s", ledger.ErrNotMember, input.UserID, group.ID)
		}

		event := s.newEvent(events.EventTypeMemberRemoved, input.ActorID, "")
		event.Attributes = map[string]string{"member_id": input.UserID}
		return &groupChange{Event: event}, nil
	})
	if err != nil {
		return nil, err
	}

	return &RemoveMemberOutput{Group: group}, nil
}

// IsMember reports whether a user belongs to a group
func (s *service) IsMember(ctx context.Context, input *IsMemberInput) (*IsMemberOutput, error) {
	if input == nil {
		return nil, invalid("input is required")
	}

	group, err := s.loadGroup(ctx, input.GroupID)
	if err != nil {
		return nil, err
	}
	return &IsMemberOutput{IsMember: group.IsMember(input.UserID)}, nil
}

// ListGroupsForUser returns the groups a user belongs to
func (s *service) ListGroupsForUser(ctx context.Context, input *ListGroupsForUserInput) (*ListGroupsForUserOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, invalid("user is required")
	}

	ids, err := s.groupRepo.GetGroupIDsForUser(ctx, &groupRepo.GetGroupIDsForUserInput{UserID: input.UserID})
	if err != nil {
		return nil, err
	}

	groups := make([]*models.Group, 0, len(ids.GroupIDs))
	for _, groupID := range ids.GroupIDs {
		group, err := s.loadGroup(ctx, groupID)
		if err != nil {
			if errors.Is(err, ledger.ErrNotFound) {
				// Group deleted between listing and loading
				continue
			}
			return nil, err
		}
		groups = append(groups, group)
	}

	return &ListGroupsForUserOutput{Groups: groups}, nil
}
