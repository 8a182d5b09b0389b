// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/alfassih/praxis_backend/internal/repo/document"
	"github.com/alfassih/praxis_backend/internal/repo/patient"
	"github.com/alfassih/praxis_backend/internal/repo/session"
	"github.com/alfassih/praxis_backend/internal/repo/therapist"
	"github.com/alfassih/praxis_backend/internal/repo/user"
	"github.com/alfassih/praxis_backend/internal/schema"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	documentMixin := schema.Document{}.Mixin()
	documentMixinFields0 := documentMixin[0].Fields()
	_ = documentMixinFields0
	documentMixinFields1 := documentMixin[1].Fields()
	_ = documentMixinFields1
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentMixinFields1[0].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	// documentDescTitle is the schema descriptor for title field.
	documentDescTitle := documentFields[1].Descriptor()
	// document.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	document.TitleValidator = func() func(string) error {
		validators := documentDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentDescDocumentType is the schema descriptor for document_type field.
	documentDescDocumentType := documentFields[2].Descriptor()
	// document.DocumentTypeValidator is a validator for the "document_type" field. It is called by the builders before save.
	document.DocumentTypeValidator = documentDescDocumentType.Validators[0].(func(string) error)
	// documentDescFilename is the schema descriptor for filename field.
	documentDescFilename := documentFields[4].Descriptor()
	// document.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	document.FilenameValidator = func() func(string) error {
		validators := documentDescFilename.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(filename string) error {
			for _, fn := range fns {
				if err := fn(filename); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentMixinFields0[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	patientMixin := schema.Patient{}.Mixin()
	patientMixinFields0 := patientMixin[0].Fields()
	_ = patientMixinFields0
	patientMixinFields1 := patientMixin[1].Fields()
	_ = patientMixinFields1
	patientFields := schema.Patient{}.Fields()
	_ = patientFields
	// patientDescCreatedAt is the schema descriptor for created_at field.
	patientDescCreatedAt := patientMixinFields1[0].Descriptor()
	// patient.DefaultCreatedAt holds the default value on creation for the created_at field.
	patient.DefaultCreatedAt = patientDescCreatedAt.Default.(func() time.Time)
	// patientDescUpdatedAt is the schema descriptor for updated_at field.
	patientDescUpdatedAt := patientMixinFields1[1].Descriptor()
	// patient.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	patient.DefaultUpdatedAt = patientDescUpdatedAt.Default.(func() time.Time)
	// patient.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	patient.UpdateDefaultUpdatedAt = patientDescUpdatedAt.UpdateDefault.(func() time.Time)
	// patientDescFirstName is the schema descriptor for first_name field.
	patientDescFirstName := patientFields[0].Descriptor()
	// patient.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	patient.FirstNameValidator = func() func(string) error {
		validators := patientDescFirstName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(first_name string) error {
			for _, fn := range fns {
				if err := fn(first_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// patientDescLastName is the schema descriptor for last_name field.
	patientDescLastName := patientFields[1].Descriptor()
	// patient.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	patient.LastNameValidator = func() func(string) error {
		validators := patientDescLastName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(last_name string) error {
			for _, fn := range fns {
				if err := fn(last_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// patientDescID is the schema descriptor for id field.
	patientDescID := patientMixinFields0[0].Descriptor()
	// patient.DefaultID holds the default value on creation for the id field.
	patient.DefaultID = patientDescID.Default.(func() uuid.UUID)
	sessionMixin := schema.Session{}.Mixin()
	sessionMixinFields0 := sessionMixin[0].Fields()
	_ = sessionMixinFields0
	sessionMixinFields1 := sessionMixin[1].Fields()
	_ = sessionMixinFields1
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescCreatedAt is the schema descriptor for created_at field.
	sessionDescCreatedAt := sessionMixinFields1[0].Descriptor()
	// session.DefaultCreatedAt holds the default value on creation for the created_at field.
	session.DefaultCreatedAt = sessionDescCreatedAt.Default.(func() time.Time)
	// sessionDescUpdatedAt is the schema descriptor for updated_at field.
	sessionDescUpdatedAt := sessionMixinFields1[1].Descriptor()
	// session.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	session.DefaultUpdatedAt = sessionDescUpdatedAt.Default.(func() time.Time)
	// session.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	session.UpdateDefaultUpdatedAt = sessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// sessionDescSessionType is the schema descriptor for session_type field.
	sessionDescSessionType := sessionFields[4].Descriptor()
	// session.SessionTypeValidator is a validator for the "session_type" field. It is called by the builders before save.
	session.SessionTypeValidator = sessionDescSessionType.Validators[0].(func(string) error)
	// sessionDescID is the schema descriptor for id field.
	sessionDescID := sessionMixinFields0[0].Descriptor()
	// session.DefaultID holds the default value on creation for the id field.
	session.DefaultID = sessionDescID.Default.(func() uuid.UUID)
	therapistMixin := schema.Therapist{}.Mixin()
	therapistMixinFields0 := therapistMixin[0].Fields()
	_ = therapistMixinFields0
	therapistMixinFields1 := therapistMixin[1].Fields()
	_ = therapistMixinFields1
	therapistFields := schema.Therapist{}.Fields()
	_ = therapistFields
	// therapistDescCreatedAt is the schema descriptor for created_at field.
	therapistDescCreatedAt := therapistMixinFields1[0].Descriptor()
	// therapist.DefaultCreatedAt holds the default value on creation for the created_at field.
	therapist.DefaultCreatedAt = therapistDescCreatedAt.Default.(func() time.Time)
	// therapistDescUpdatedAt is the schema descriptor for updated_at field.
	therapistDescUpdatedAt := therapistMixinFields1[1].Descriptor()
	// therapist.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	therapist.DefaultUpdatedAt = therapistDescUpdatedAt.Default.(func() time.Time)
	// therapist.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	therapist.UpdateDefaultUpdatedAt = therapistDescUpdatedAt.UpdateDefault.(func() time.Time)
	// therapistDescFirstName is the schema descriptor for first_name field.
	therapistDescFirstName := therapistFields[0].Descriptor()
	// therapist.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	therapist.FirstNameValidator = func() func(string) error {
		validators := therapistDescFirstName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(first_name string) error {
			for _, fn := range fns {
				if err := fn(first_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// therapistDescLastName is the schema descriptor for last_name field.
	therapistDescLastName := therapistFields[1].Descriptor()
	// therapist.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	therapist.LastNameValidator = func() func(string) error {
		validators := therapistDescLastName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(last_name string) error {
			for _, fn := range fns {
				if err := fn(last_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// therapistDescSpecialization is the schema descriptor for specialization field.
	therapistDescSpecialization := therapistFields[2].Descriptor()
	// therapist.SpecializationValidator is a validator for the "specialization" field. It is called by the builders before save.
	therapist.SpecializationValidator = therapistDescSpecialization.Validators[0].(func(string) error)
	// therapistDescID is the schema descriptor for id field.
	therapistDescID := therapistMixinFields0[0].Descriptor()
	// therapist.DefaultID holds the default value on creation for the id field.
	therapist.DefaultID = therapistDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields1[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields1[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[0].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = func() func(string) error {
		validators := userDescEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(email string) error {
			for _, fn := range fns {
				if err := fn(email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[1].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescFirstName is the schema descriptor for first_name field.
	userDescFirstName := userFields[2].Descriptor()
	// user.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	user.FirstNameValidator = userDescFirstName.Validators[0].(func(string) error)
	// userDescLastName is the schema descriptor for last_name field.
	userDescLastName := userFields[3].Descriptor()
	// user.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	user.LastNameValidator = userDescLastName.Validators[0].(func(string) error)
	// userDescIsActive is the schema descriptor for is_active field.
	userDescIsActive := userFields[5].Descriptor()
	// user.DefaultIsActive holds the default value on creation for the is_active field.
	user.DefaultIsActive = userDescIsActive.Default.(bool)
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
