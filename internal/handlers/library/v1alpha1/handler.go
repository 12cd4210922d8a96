// Package v1alpha1 handles the library grpc service interface
package v1alpha1

import (
	"context"
	"encoding/json"
	"math"
	"strings"

	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/laasilva/dracolich-library-api-sub000/internal/errors"
	"github.com/laasilva/dracolich-library-api-sub000/internal/orchestrators/library"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	LibraryService library.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil || c.LibraryService == nil {
		return errors.InvalidArgument("library service is required")
	}
	return nil
}

// Handler implements the library gRPC service
type Handler struct {
	libraryService library.Service
}

var _ LibraryServiceServer = (*Handler)(nil)

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		libraryService: cfg.LibraryService,
	}, nil
}

// GetClass returns a class with its subclasses
func (h *Handler) GetClass(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	if strings.TrimSpace(req.GetValue()) == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("class name or id is required"))
	}

	out, err := h.libraryService.GetClassDetails(ctx, &library.GetClassDetailsInput{NameOrID: req.GetValue()})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return toStruct(out.Details)
}

// ListClasses returns every class with its subclasses
func (h *Handler) ListClasses(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	out, err := h.libraryService.ListClassDetails(ctx, &library.ListClassDetailsInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return toList(out.Details)
}

// GetRace returns a race with its subraces
func (h *Handler) GetRace(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	if strings.TrimSpace(req.GetValue()) == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("race name or id is required"))
	}

	out, err := h.libraryService.GetRaceDetails(ctx, &library.GetRaceDetailsInput{NameOrID: req.GetValue()})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return toStruct(out.Details)
}

// ListRaces returns every race with its subraces
func (h *Handler) ListRaces(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	out, err := h.libraryService.ListRaceDetails(ctx, &library.ListRaceDetailsInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return toList(out.Details)
}

// ListAttributes returns every racial attribute
func (h *Handler) ListAttributes(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	out, err := h.libraryService.ListAttributes(ctx, &library.ListAttributesInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return toList(out.Attributes)
}

// ListAlignments returns every alignment
func (h *Handler) ListAlignments(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	out, err := h.libraryService.ListAlignments(ctx, &library.ListAlignmentsInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return toList(out.Alignments)
}

// ListBackgrounds returns every background
func (h *Handler) ListBackgrounds(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	out, err := h.libraryService.ListBackgrounds(ctx, &library.ListBackgroundsInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return toList(out.Backgrounds)
}

// ListFeatures returns features, limited to one class when a name is given
func (h *Handler) ListFeatures(ctx context.Context, req *wrapperspb.StringValue) (*structpb.ListValue, error) {
	out, err := h.libraryService.ListFeatures(ctx, &library.ListFeaturesInput{
		ClassName: strings.TrimSpace(req.GetValue()),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return toList(out.Features)
}

// GetSpell returns one spell by name or id
func (h *Handler) GetSpell(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	if strings.TrimSpace(req.GetValue()) == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("spell name is required"))
	}

	out, err := h.libraryService.GetSpell(ctx, &library.GetSpellInput{Name: req.GetValue()})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return toStruct(out.Spell)
}

// ListSpells accepts optional "level" (number) and "class" (string) filters
func (h *Handler) ListSpells(ctx context.Context, req *structpb.Struct) (*structpb.ListValue, error) {
	input, err := spellFilter(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.libraryService.ListSpells(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return toList(out.Spells)
}

// ListEquipment returns equipment, limited to one category when given
func (h *Handler) ListEquipment(ctx context.Context, req *wrapperspb.StringValue) (*structpb.ListValue, error) {
	out, err := h.libraryService.ListEquipment(ctx, &library.ListEquipmentInput{
		Category: strings.TrimSpace(req.GetValue()),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return toList(out.Equipment)
}

// GetEquipment returns one piece of equipment by name or id
func (h *Handler) GetEquipment(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	if strings.TrimSpace(req.GetValue()) == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("equipment name is required"))
	}

	out, err := h.libraryService.GetEquipment(ctx, &library.GetEquipmentInput{Name: req.GetValue()})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return toStruct(out.Equipment)
}

func spellFilter(req *structpb.Struct) (*library.ListSpellsInput, error) {
	input := &library.ListSpellsInput{}
	fields := req.GetFields()

	if v, ok := fields["level"]; ok {
		n, isNumber := v.GetKind().(*structpb.Value_NumberValue)
		if !isNumber || n.NumberValue != math.Trunc(n.NumberValue) {
			return nil, errors.InvalidArgument("level must be a whole number")
		}
		level := int(n.NumberValue)
		input.Level = &level
	}

	if v, ok := fields["class"]; ok {
		s, isString := v.GetKind().(*structpb.Value_StringValue)
		if !isString {
			return nil, errors.InvalidArgument("class must be a string")
		}
		input.ClassName = strings.TrimSpace(s.StringValue)
	}

	return input, nil
}

// toStruct converts a record or view to a Struct through its JSON form so
// the wire shape matches the stored document
func toStruct(v interface{}) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.ToGRPCError(errors.Wrap(err, "failed to encode response"))
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, errors.ToGRPCError(errors.Wrap(err, "failed to encode response"))
	}

	out, err := structpb.NewStruct(payload)
	if err != nil {
		return nil, errors.ToGRPCError(errors.Wrap(err, "failed to encode response"))
	}
	return out, nil
}

func toList(v interface{}) (*structpb.ListValue, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.ToGRPCError(errors.Wrap(err, "failed to encode response"))
	}

	payload := []interface{}{}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, errors.ToGRPCError(errors.Wrap(err, "failed to encode response"))
	}

	out, err := structpb.NewList(payload)
	if err != nil {
		return nil, errors.ToGRPCError(errors.Wrap(err, "failed to encode response"))
	}
	return out, nil
}
